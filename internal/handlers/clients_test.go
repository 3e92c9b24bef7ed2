package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frostline/hvac-office/internal/models"
)

func TestClientHandler_CreateAndList(t *testing.T) {
	handler := NewClientHandler(testCollections(t))

	client := models.Client{Name: "Ted Okafor", Type: models.ClientResidential}
	w := postJSON(t, handler, "/api/clients", client)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Client
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	var listed []models.Client
	assert.NoError(t, json.Unmarshal(w2.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestClientHandler_CreateInvalidType(t *testing.T) {
	handler := NewClientHandler(testCollections(t))

	client := models.Client{Name: "Someone", Type: "Industrial"}
	w := postJSON(t, handler, "/api/clients", client)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_UpdateKeepsIdentity(t *testing.T) {
	collections := testCollections(t)
	handler := NewClientHandler(collections)

	w := postJSON(t, handler, "/api/clients", models.Client{Name: "Old Name", Type: models.ClientResidential})
	var created models.Client
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	edit := created
	edit.ID = "spoofed"
	edit.Name = "New Name"
	edit.Type = models.ClientCommercial
	w2 := putJSON(t, handler, "/api/clients?id="+created.ID, edit)
	assert.Equal(t, http.StatusOK, w2.Code)

	var updated models.Client
	assert.NoError(t, json.Unmarshal(w2.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Name", updated.Name)
}

func TestClientHandler_DeleteDoesNotCascade(t *testing.T) {
	collections := testCollections(t)
	clientHandler := NewClientHandler(collections)
	invoiceHandler := NewInvoiceHandler(collections)

	w := postJSON(t, clientHandler, "/api/clients", models.Client{Name: "Soon Gone", Type: models.ClientResidential})
	var created models.Client
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	inv := models.Invoice{
		ClientID: created.ID,
		Status:   models.InvoiceDraft,
		Items:    []models.InvoiceItem{{Quantity: 1, UnitPrice: 10}},
	}
	w2 := postJSON(t, invoiceHandler, "/api/invoices", inv)
	assert.Equal(t, http.StatusCreated, w2.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/clients?id="+created.ID, nil)
	w3 := httptest.NewRecorder()
	clientHandler.ServeHTTP(w3, req)
	assert.Equal(t, http.StatusNoContent, w3.Code)

	// The invoice survives with a dangling client reference.
	invoices := collections.Invoices(context.Background())
	assert.Len(t, invoices, 1)
	assert.Equal(t, created.ID, invoices[0].ClientID)
}

func TestExpenseHandler_InvalidCategory(t *testing.T) {
	handler := NewExpenseHandler(testCollections(t))

	expense := models.Expense{Description: "Mystery", Amount: 12, Category: "Snacks"}
	w := postJSON(t, handler, "/api/expenses", expense)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
