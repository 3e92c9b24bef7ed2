package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/frostline/hvac-office/internal/db"
	"github.com/frostline/hvac-office/internal/models"
)

// ExpenseHandler serves /api/expenses
type ExpenseHandler struct {
	Collections *db.Collections
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(collections *db.Collections) *ExpenseHandler {
	return &ExpenseHandler{Collections: collections}
}

func (h *ExpenseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

func (h *ExpenseHandler) list(w http.ResponseWriter, r *http.Request) {
	expenses := h.Collections.Expenses(r.Context())
	writeJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var expense models.Expense
	if err := json.Unmarshal(body, &expense); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidExpenseCategory(expense.Category) {
		http.Error(w, "Invalid expense category", http.StatusBadRequest)
		return
	}

	expense.ID = models.NewID()
	expense.CreatedAt = time.Now()

	expenses := h.Collections.Expenses(r.Context())
	expenses = append(expenses, expense)
	if err := h.Collections.SaveExpenses(r.Context(), expenses); err != nil {
		http.Error(w, "Failed to save expense", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Expense ID is required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var expense models.Expense
	if err := json.Unmarshal(body, &expense); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidExpenseCategory(expense.Category) {
		http.Error(w, "Invalid expense category", http.StatusBadRequest)
		return
	}

	expenses := h.Collections.Expenses(r.Context())
	for i := range expenses {
		if expenses[i].ID == id {
			expense.ID = id
			expense.CreatedAt = expenses[i].CreatedAt
			expenses[i] = expense
			if err := h.Collections.SaveExpenses(r.Context(), expenses); err != nil {
				http.Error(w, "Failed to save expense", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, expense)
			return
		}
	}

	http.Error(w, "Expense not found", http.StatusNotFound)
}

func (h *ExpenseHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Expense ID is required", http.StatusBadRequest)
		return
	}

	expenses := h.Collections.Expenses(r.Context())
	for i := range expenses {
		if expenses[i].ID == id {
			expenses = append(expenses[:i], expenses[i+1:]...)
			if err := h.Collections.SaveExpenses(r.Context(), expenses); err != nil {
				http.Error(w, "Failed to save expenses", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	http.Error(w, "Expense not found", http.StatusNotFound)
}
