package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/frostline/hvac-office/internal/costing"
	"github.com/frostline/hvac-office/internal/db"
	"github.com/frostline/hvac-office/internal/models"
)

// ServiceHandler serves /api/services. Every save normalizes the
// bill-of-materials and reprices the kit against current inventory.
type ServiceHandler struct {
	Collections *db.Collections
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(collections *db.Collections) *ServiceHandler {
	return &ServiceHandler{Collections: collections}
}

func (h *ServiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

func (h *ServiceHandler) list(w http.ResponseWriter, r *http.Request) {
	services := h.Collections.Services(r.Context())
	writeJSON(w, http.StatusOK, services)
}

// price derives the stored form of a service: a clean bill-of-materials and
// the repriced total.
func (h *ServiceHandler) price(r *http.Request, svc models.Service) models.Service {
	inventory := h.Collections.Inventory(r.Context())
	svc.Items = costing.Normalize(svc.Items)
	svc.TotalPrice = costing.TotalPrice(svc.Items, inventory, svc.LaborCost)
	return svc
}

func (h *ServiceHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var svc models.Service
	if err := json.Unmarshal(body, &svc); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if svc.Name == "" {
		http.Error(w, "Service name is required", http.StatusBadRequest)
		return
	}

	svc.ID = models.NewID()
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	svc = h.price(r, svc)

	services := h.Collections.Services(r.Context())
	services = append(services, svc)
	if err := h.Collections.SaveServices(r.Context(), services); err != nil {
		http.Error(w, "Failed to save service", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, svc)
}

func (h *ServiceHandler) update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Service ID is required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var svc models.Service
	if err := json.Unmarshal(body, &svc); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	services := h.Collections.Services(r.Context())
	for i := range services {
		if services[i].ID == id {
			svc.ID = id
			svc.CreatedAt = services[i].CreatedAt
			svc.UpdatedAt = time.Now()
			svc = h.price(r, svc)
			services[i] = svc
			if err := h.Collections.SaveServices(r.Context(), services); err != nil {
				http.Error(w, "Failed to save service", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, svc)
			return
		}
	}

	http.Error(w, "Service not found", http.StatusNotFound)
}

func (h *ServiceHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Service ID is required", http.StatusBadRequest)
		return
	}

	services := h.Collections.Services(r.Context())
	for i := range services {
		if services[i].ID == id {
			services = append(services[:i], services[i+1:]...)
			if err := h.Collections.SaveServices(r.Context(), services); err != nil {
				http.Error(w, "Failed to save services", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	http.Error(w, "Service not found", http.StatusNotFound)
}
