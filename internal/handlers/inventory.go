package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/frostline/hvac-office/internal/db"
	"github.com/frostline/hvac-office/internal/models"
)

// InventoryHandler serves /api/inventory
type InventoryHandler struct {
	Collections *db.Collections
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(collections *db.Collections) *InventoryHandler {
	return &InventoryHandler{Collections: collections}
}

func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *InventoryHandler) list(w http.ResponseWriter, r *http.Request) {
	items := h.Collections.Inventory(r.Context())
	writeJSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var item models.InventoryItem
	if err := json.Unmarshal(body, &item); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Name == "" {
		http.Error(w, "Item name is required", http.StatusBadRequest)
		return
	}

	item.ID = models.NewID()
	item.CreatedAt = time.Now()

	items := h.Collections.Inventory(r.Context())
	items = append(items, item)
	if err := h.Collections.SaveInventory(r.Context(), items); err != nil {
		http.Error(w, "Failed to save inventory item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Item ID is required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var item models.InventoryItem
	if err := json.Unmarshal(body, &item); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	items := h.Collections.Inventory(r.Context())
	for i := range items {
		if items[i].ID == id {
			item.ID = id
			item.CreatedAt = items[i].CreatedAt
			items[i] = item
			if err := h.Collections.SaveInventory(r.Context(), items); err != nil {
				http.Error(w, "Failed to save inventory item", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, item)
			return
		}
	}

	http.Error(w, "Item not found", http.StatusNotFound)
}

func (h *InventoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Item ID is required", http.StatusBadRequest)
		return
	}

	items := h.Collections.Inventory(r.Context())
	for i := range items {
		if items[i].ID == id {
			// Services referencing this item keep their line; costing
			// treats the dangling reference as contributing zero.
			items = append(items[:i], items[i+1:]...)
			if err := h.Collections.SaveInventory(r.Context(), items); err != nil {
				http.Error(w, "Failed to save inventory", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	http.Error(w, "Item not found", http.StatusNotFound)
}
