package invoicing

import (
	"fmt"
)

// NextNumber returns the human-readable number for the next invoice given
// the current size of the invoice collection: INV-0001, INV-0002, and so
// on. Numbering is size-based, so deleting an invoice can make a number
// reusable; the numbers are labels for people, not identifiers, and the
// entity ID stays unique regardless.
func NextNumber(count int) string {
	return fmt.Sprintf("INV-%04d", count+1)
}
