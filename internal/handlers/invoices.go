package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/frostline/hvac-office/internal/db"
	"github.com/frostline/hvac-office/internal/invoicing"
	"github.com/frostline/hvac-office/internal/models"
)

// InvoiceHandler serves /api/invoices. Every save resolves the client and
// runs the derivation engine before anything is persisted; an invoice that
// cannot be resolved to a client is rejected outright.
type InvoiceHandler struct {
	Collections *db.Collections
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(collections *db.Collections) *InvoiceHandler {
	return &InvoiceHandler{Collections: collections}
}

func (h *InvoiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

func (h *InvoiceHandler) list(w http.ResponseWriter, r *http.Request) {
	invoices := h.Collections.Invoices(r.Context())
	writeJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var inv models.Invoice
	if err := json.Unmarshal(body, &inv); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidInvoiceStatus(inv.Status) {
		http.Error(w, "Invalid invoice status", http.StatusBadRequest)
		return
	}

	client := h.findClient(r, inv.ClientID)

	invoices := h.Collections.Invoices(r.Context())

	inv.ID = models.NewID()
	inv.Number = invoicing.NextNumber(len(invoices))
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = inv.CreatedAt

	derived, err := invoicing.Derive(inv, client)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	invoices = append(invoices, derived)
	if err := h.Collections.SaveInvoices(r.Context(), invoices); err != nil {
		http.Error(w, "Failed to save invoice", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, derived)
}

func (h *InvoiceHandler) update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Invoice ID is required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var inv models.Invoice
	if err := json.Unmarshal(body, &inv); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidInvoiceStatus(inv.Status) {
		http.Error(w, "Invalid invoice status", http.StatusBadRequest)
		return
	}

	client := h.findClient(r, inv.ClientID)

	invoices := h.Collections.Invoices(r.Context())
	for i := range invoices {
		if invoices[i].ID == id {
			// The number was assigned at creation and is never recomputed
			inv.ID = id
			inv.Number = invoices[i].Number
			inv.CreatedAt = invoices[i].CreatedAt
			inv.UpdatedAt = time.Now()

			derived, err := invoicing.Derive(inv, client)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			invoices[i] = derived
			if err := h.Collections.SaveInvoices(r.Context(), invoices); err != nil {
				http.Error(w, "Failed to save invoice", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, derived)
			return
		}
	}

	http.Error(w, "Invoice not found", http.StatusNotFound)
}

func (h *InvoiceHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Invoice ID is required", http.StatusBadRequest)
		return
	}

	invoices := h.Collections.Invoices(r.Context())
	for i := range invoices {
		if invoices[i].ID == id {
			invoices = append(invoices[:i], invoices[i+1:]...)
			if err := h.Collections.SaveInvoices(r.Context(), invoices); err != nil {
				http.Error(w, "Failed to save invoices", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	http.Error(w, "Invoice not found", http.StatusNotFound)
}

// findClient resolves a client ID against the client collection, returning
// nil when it does not resolve. The derivation engine turns nil into the
// validation error surfaced to the user.
func (h *InvoiceHandler) findClient(r *http.Request, clientID string) *models.Client {
	if clientID == "" {
		return nil
	}
	clients := h.Collections.Clients(r.Context())
	for i := range clients {
		if clients[i].ID == clientID {
			return &clients[i]
		}
	}
	return nil
}

// PrintPayload is everything the external renderer needs to produce a
// printable invoice: the fully derived invoice, its client and the
// business settings.
type PrintPayload struct {
	Invoice  models.Invoice  `json:"invoice"`
	Client   models.Client   `json:"client"`
	Settings models.Settings `json:"settings"`
}

// InvoicePrintHandler serves /api/invoices/print?id=
type InvoicePrintHandler struct {
	Collections *db.Collections
}

// NewInvoicePrintHandler creates a new invoice print-payload handler
func NewInvoicePrintHandler(collections *db.Collections) *InvoicePrintHandler {
	return &InvoicePrintHandler{Collections: collections}
}

func (h *InvoicePrintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Invoice ID is required", http.StatusBadRequest)
		return
	}

	var inv *models.Invoice
	for _, candidate := range h.Collections.Invoices(r.Context()) {
		if candidate.ID == id {
			inv = &candidate
			break
		}
	}
	if inv == nil {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}

	var client *models.Client
	for _, candidate := range h.Collections.Clients(r.Context()) {
		if candidate.ID == inv.ClientID {
			client = &candidate
			break
		}
	}
	if client == nil {
		http.Error(w, "Invoice client no longer exists", http.StatusConflict)
		return
	}

	payload := PrintPayload{
		Invoice:  *inv,
		Client:   *client,
		Settings: h.Collections.Settings(r.Context()),
	}
	writeJSON(w, http.StatusOK, payload)
}
