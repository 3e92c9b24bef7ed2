package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/frostline/hvac-office/internal/db"
	"github.com/frostline/hvac-office/internal/models"
)

// ClientHandler serves /api/clients
type ClientHandler struct {
	Collections *db.Collections
}

// NewClientHandler creates a new client handler
func NewClientHandler(collections *db.Collections) *ClientHandler {
	return &ClientHandler{Collections: collections}
}

func (h *ClientHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

func (h *ClientHandler) list(w http.ResponseWriter, r *http.Request) {
	clients := h.Collections.Clients(r.Context())
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var client models.Client
	if err := json.Unmarshal(body, &client); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if client.Name == "" {
		http.Error(w, "Client name is required", http.StatusBadRequest)
		return
	}
	if !models.IsValidClientType(client.Type) {
		http.Error(w, "Invalid client type", http.StatusBadRequest)
		return
	}

	client.ID = models.NewID()
	client.CreatedAt = time.Now()

	clients := h.Collections.Clients(r.Context())
	clients = append(clients, client)
	if err := h.Collections.SaveClients(r.Context(), clients); err != nil {
		http.Error(w, "Failed to save client", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Client ID is required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var client models.Client
	if err := json.Unmarshal(body, &client); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidClientType(client.Type) {
		http.Error(w, "Invalid client type", http.StatusBadRequest)
		return
	}

	clients := h.Collections.Clients(r.Context())
	for i := range clients {
		if clients[i].ID == id {
			// Identity and creation time are immutable
			client.ID = id
			client.CreatedAt = clients[i].CreatedAt
			clients[i] = client
			if err := h.Collections.SaveClients(r.Context(), clients); err != nil {
				http.Error(w, "Failed to save client", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, client)
			return
		}
	}

	http.Error(w, "Client not found", http.StatusNotFound)
}

func (h *ClientHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Client ID is required", http.StatusBadRequest)
		return
	}

	clients := h.Collections.Clients(r.Context())
	for i := range clients {
		if clients[i].ID == id {
			// No cascade: invoices referencing this client keep their
			// (now dangling) reference.
			clients = append(clients[:i], clients[i+1:]...)
			if err := h.Collections.SaveClients(r.Context(), clients); err != nil {
				http.Error(w, "Failed to save clients", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	http.Error(w, "Client not found", http.StatusNotFound)
}
