package models

import (
	"time"
)

// ServiceItem is one bill-of-materials line of a service kit. A service
// never holds two lines for the same inventory item, and never a line with
// quantity zero.
type ServiceItem struct {
	InventoryItemID string `bson:"inventory_item_id" json:"inventory_item_id"`
	Quantity        int    `bson:"quantity" json:"quantity"`
}

// Service represents a pre-priced job or installation kit: a
// bill-of-materials plus a labor charge. TotalPrice is derived by the
// costing engine on every save.
type Service struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description,omitempty"`
	Items       []ServiceItem `bson:"items" json:"items"`
	LaborCost   float64       `bson:"labor_cost" json:"labor_cost"` // in USD
	TotalPrice  float64       `bson:"total_price" json:"total_price"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}
