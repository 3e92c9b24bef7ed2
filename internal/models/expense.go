package models

import (
	"time"
)

// ExpenseCategory classifies a business expense.
type ExpenseCategory string

const (
	ExpenseMaterials ExpenseCategory = "Materials"
	ExpenseFuel      ExpenseCategory = "Fuel"
	ExpenseTools     ExpenseCategory = "Tools"
	ExpenseMarketing ExpenseCategory = "Marketing"
	ExpenseOther     ExpenseCategory = "Other"
)

// IsValidExpenseCategory checks if an expense category is valid
func IsValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseMaterials, ExpenseFuel, ExpenseTools, ExpenseMarketing, ExpenseOther:
		return true
	default:
		return false
	}
}

// Expense represents a business expense record.
type Expense struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	Description string          `bson:"description" json:"description"`
	Amount      float64         `bson:"amount" json:"amount"` // in USD
	Date        time.Time       `bson:"date" json:"date"`
	Category    ExpenseCategory `bson:"category" json:"category"` // "Materials", "Fuel", "Tools", "Marketing", "Other"
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
}
