// Package invoicing derives the engine-owned parts of an invoice from its
// line items: totals, maintenance follow-up dates and the fixed legal notes.
// Derivation is a pure function of the draft invoice and its client; it is
// rerun in full on every save, so saving the same invoice twice produces the
// same result.
package invoicing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frostline/hvac-office/internal/models"
)

var (
	// ErrClientRequired is returned when an invoice cannot be resolved to
	// an existing client.
	ErrClientRequired = errors.New("invoice must reference an existing client")
)

// WarrantyNote is appended to invoices that sell new equipment.
const WarrantyNote = "All new equipment installed under this invoice is covered by a 1-year labor warranty in addition to the manufacturer's parts warranty. Warranty coverage requires proof of regular professional maintenance."

// maintenanceMonths is how far ahead a follow-up visit is scheduled when an
// invoice contains maintenance work.
const maintenanceMonths = 6

// MaintenanceRecommendation returns the fixed recommendation sentence for a
// client, with the service interval baked into the text.
func MaintenanceRecommendation(client *models.Client) string {
	return fmt.Sprintf("To protect your warranty and keep your new equipment running at peak efficiency, we recommend a professional maintenance visit every %d months.", client.MaintenanceIntervalMonths())
}

// Derive recomputes the engine-owned fields of an invoice and returns the
// updated copy. The caller persists the result.
//
// Maintenance dates are overwritten unconditionally: toggling the last
// maintenance line off an invoice and re-saving clears a previously
// scheduled follow-up. Notes are only ever appended to — a fixed sentence
// already present stays even if the flag that introduced it is later
// cleared, matching how invoices have historically behaved. Line items are
// not validated here; the entry form is responsible for input sanitation.
func Derive(inv models.Invoice, client *models.Client) (models.Invoice, error) {
	if client == nil {
		return inv, ErrClientRequired
	}

	if inv.HasMaintenanceItem() {
		last := inv.IssueDate
		next := inv.IssueDate.AddDate(0, maintenanceMonths, 0)
		inv.LastMaintenanceDate = &last
		inv.NextMaintenanceDate = &next
	} else {
		inv.LastMaintenanceDate = nil
		inv.NextMaintenanceDate = nil
	}

	if inv.HasNewEquipmentItem() {
		inv.Notes = appendNote(inv.Notes, WarrantyNote)
		inv.Notes = appendNote(inv.Notes, MaintenanceRecommendation(client))
	}

	return inv, nil
}

// appendNote appends a fixed sentence to the notes unless the text already
// contains it. Deduplication is by textual containment, so user-written
// notes are never touched.
func appendNote(notes, sentence string) string {
	if strings.Contains(notes, sentence) {
		return notes
	}
	if notes == "" {
		return sentence
	}
	return notes + "\n\n" + sentence
}
