package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/frostline/hvac-office/internal/db"
	"github.com/frostline/hvac-office/internal/models"
)

// SettingsHandler serves /api/settings: the single business profile value.
type SettingsHandler struct {
	Collections *db.Collections
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(collections *db.Collections) *SettingsHandler {
	return &SettingsHandler{Collections: collections}
}

func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.Collections.Settings(r.Context()))
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SettingsHandler) update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var settings models.Settings
	if err := json.Unmarshal(body, &settings); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if settings.BusinessName == "" {
		http.Error(w, "Business name is required", http.StatusBadRequest)
		return
	}

	if err := h.Collections.SaveSettings(r.Context(), settings); err != nil {
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
