// Package costing prices service kits from their bill-of-materials and
// labor cost.
package costing

import (
	"github.com/frostline/hvac-office/internal/models"
)

// MaterialsCost sums unit price times quantity over the bill-of-materials,
// looking prices up in the supplied inventory. A line whose inventory item
// no longer exists contributes zero: the part was deleted after the service
// was defined, and the kit should not error out because of it.
func MaterialsCost(items []models.ServiceItem, inventory []models.InventoryItem) float64 {
	prices := make(map[string]float64, len(inventory))
	for _, part := range inventory {
		prices[part.ID] = part.UnitPrice
	}

	var total float64
	for _, line := range items {
		total += prices[line.InventoryItemID] * float64(line.Quantity)
	}
	return total
}

// TotalPrice returns the derived price of a service: materials plus labor.
func TotalPrice(items []models.ServiceItem, inventory []models.InventoryItem, laborCost float64) float64 {
	return MaterialsCost(items, inventory) + laborCost
}

// SetLineQuantity returns the bill-of-materials with the line for the given
// inventory item set to qty. Setting a quantity of zero (or less) removes
// the line entirely; a positive quantity for an item not yet present
// inserts a new line. The result never holds zero-quantity or duplicate
// lines.
func SetLineQuantity(items []models.ServiceItem, inventoryItemID string, qty int) []models.ServiceItem {
	out := make([]models.ServiceItem, 0, len(items)+1)
	found := false
	for _, line := range items {
		if line.InventoryItemID == inventoryItemID {
			found = true
			if qty > 0 {
				out = append(out, models.ServiceItem{InventoryItemID: inventoryItemID, Quantity: qty})
			}
			continue
		}
		out = append(out, line)
	}
	if !found && qty > 0 {
		out = append(out, models.ServiceItem{InventoryItemID: inventoryItemID, Quantity: qty})
	}
	return out
}

// Normalize collapses duplicate bill-of-materials lines (summing their
// quantities) and drops non-positive ones. Save paths run it so the stored
// form always honors the no-duplicates, no-zero-quantity invariant.
func Normalize(items []models.ServiceItem) []models.ServiceItem {
	index := make(map[string]int)
	out := make([]models.ServiceItem, 0, len(items))
	for _, line := range items {
		if i, ok := index[line.InventoryItemID]; ok {
			out[i].Quantity += line.Quantity
			continue
		}
		index[line.InventoryItemID] = len(out)
		out = append(out, line)
	}
	filtered := out[:0]
	for _, line := range out {
		if line.Quantity > 0 {
			filtered = append(filtered, line)
		}
	}
	return filtered
}
