package handlers

import (
	"net/http"
	"time"

	"github.com/frostline/hvac-office/internal/dashboard"
	"github.com/frostline/hvac-office/internal/db"
)

// DashboardHandler serves /api/dashboard
type DashboardHandler struct {
	Collections *db.Collections

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(collections *db.Collections) *DashboardHandler {
	return &DashboardHandler{Collections: collections, Now: time.Now}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary := dashboard.Summarize(
		h.Collections.Invoices(r.Context()),
		h.Collections.Clients(r.Context()),
		h.Collections.Expenses(r.Context()),
		h.Now(),
	)
	writeJSON(w, http.StatusOK, summary)
}
