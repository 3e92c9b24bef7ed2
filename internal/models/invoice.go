package models

import (
	"time"
)

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "Draft"
	InvoiceSent    InvoiceStatus = "Sent"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// IsValidInvoiceStatus checks if an invoice status is valid
func IsValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	default:
		return false
	}
}

// InvoiceItem represents a single billed line on an invoice. The two flags
// are per-line: an invoice behaves as maintenance work or an equipment sale
// when any of its lines carries the matching flag.
type InvoiceItem struct {
	Description    string  `bson:"description" json:"description"`
	Quantity       int     `bson:"quantity" json:"quantity"`
	UnitPrice      float64 `bson:"unit_price" json:"unit_price"` // in USD
	IsMaintenance  bool    `bson:"is_maintenance" json:"is_maintenance"`
	IsNewEquipment bool    `bson:"is_new_equipment" json:"is_new_equipment"`
}

// Amount returns the line total.
func (i InvoiceItem) Amount() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Invoice represents a customer invoice. Number is assigned once at
// creation and never recomputed. LastMaintenanceDate and
// NextMaintenanceDate are owned by the derivation engine and are rewritten
// in full on every save.
type Invoice struct {
	ID                  string        `bson:"_id,omitempty" json:"id"`
	ClientID            string        `bson:"client_id" json:"client_id"`
	Number              string        `bson:"number" json:"number"`
	IssueDate           time.Time     `bson:"issue_date" json:"issue_date"`
	DueDate             time.Time     `bson:"due_date" json:"due_date"`
	Items               []InvoiceItem `bson:"items" json:"items"`
	Notes               string        `bson:"notes" json:"notes,omitempty"`
	Status              InvoiceStatus `bson:"status" json:"status"` // "Draft", "Sent", "Paid", "Overdue"
	LastMaintenanceDate *time.Time    `bson:"last_maintenance_date,omitempty" json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time    `bson:"next_maintenance_date,omitempty" json:"next_maintenance_date,omitempty"`
	CreatedAt           time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time     `bson:"updated_at" json:"updated_at"`
}

// Subtotal returns the sum of all line amounts.
func (inv *Invoice) Subtotal() float64 {
	var total float64
	for _, item := range inv.Items {
		total += item.Amount()
	}
	return total
}

// Total returns the amount due. No discounts or taxes are applied at this
// layer, so the total equals the subtotal.
func (inv *Invoice) Total() float64 {
	return inv.Subtotal()
}

// HasMaintenanceItem reports whether any line is flagged as maintenance work.
func (inv *Invoice) HasMaintenanceItem() bool {
	for _, item := range inv.Items {
		if item.IsMaintenance {
			return true
		}
	}
	return false
}

// HasNewEquipmentItem reports whether any line is flagged as a new
// equipment sale.
func (inv *Invoice) HasNewEquipmentItem() bool {
	for _, item := range inv.Items {
		if item.IsNewEquipment {
			return true
		}
	}
	return false
}
