package models

import (
	"time"
)

// InventoryItem represents a stocked part or material. It is the source of
// truth for material prices used by service costing.
type InventoryItem struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description,omitempty"`
	Quantity    int       `bson:"quantity" json:"quantity"`     // on-hand units
	UnitPrice   float64   `bson:"unit_price" json:"unit_price"` // in USD
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
