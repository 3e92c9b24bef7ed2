package db

import (
	"context"
)

// Collection names used by the application.
const (
	CollectionClients   = "clients"
	CollectionInvoices  = "invoices"
	CollectionInventory = "inventory"
	CollectionServices  = "services"
	CollectionExpenses  = "expenses"
	CollectionSettings  = "settings"
)

// Store persists whole named collections. Load fills out with the stored
// value; when the collection is missing or its stored form cannot be read
// back, out is left at whatever default the caller initialized it to and no
// error is reported — corrupt data degrades to the default instead of
// failing the operation. Save replaces the stored collection wholesale.
type Store interface {
	Load(ctx context.Context, name string, out interface{}) error
	Save(ctx context.Context, name string, value interface{}) error
}
