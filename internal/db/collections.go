package db

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/frostline/hvac-office/internal/models"
)

// Collections wraps a Store with typed accessors for each app collection.
// Loads never fail: a read problem is logged and the empty collection (or
// default settings) is returned, so a bad disk state degrades instead of
// taking the app down. Saves report their error for the caller to surface.
type Collections struct {
	store Store
}

// NewCollections creates typed collection accessors over a store.
func NewCollections(store Store) *Collections {
	return &Collections{store: store}
}

func (c *Collections) load(ctx context.Context, name string, out interface{}) {
	if err := c.store.Load(ctx, name, out); err != nil {
		log.WithError(err).WithField("collection", name).Warn("Failed to load collection, using default")
	}
}

// Clients returns all clients.
func (c *Collections) Clients(ctx context.Context) []models.Client {
	out := []models.Client{}
	c.load(ctx, CollectionClients, &out)
	return out
}

// SaveClients replaces the client collection.
func (c *Collections) SaveClients(ctx context.Context, clients []models.Client) error {
	return c.store.Save(ctx, CollectionClients, clients)
}

// Invoices returns all invoices.
func (c *Collections) Invoices(ctx context.Context) []models.Invoice {
	out := []models.Invoice{}
	c.load(ctx, CollectionInvoices, &out)
	return out
}

// SaveInvoices replaces the invoice collection.
func (c *Collections) SaveInvoices(ctx context.Context, invoices []models.Invoice) error {
	return c.store.Save(ctx, CollectionInvoices, invoices)
}

// Inventory returns all inventory items.
func (c *Collections) Inventory(ctx context.Context) []models.InventoryItem {
	out := []models.InventoryItem{}
	c.load(ctx, CollectionInventory, &out)
	return out
}

// SaveInventory replaces the inventory collection.
func (c *Collections) SaveInventory(ctx context.Context, items []models.InventoryItem) error {
	return c.store.Save(ctx, CollectionInventory, items)
}

// Services returns all service kits.
func (c *Collections) Services(ctx context.Context) []models.Service {
	out := []models.Service{}
	c.load(ctx, CollectionServices, &out)
	return out
}

// SaveServices replaces the service collection.
func (c *Collections) SaveServices(ctx context.Context, services []models.Service) error {
	return c.store.Save(ctx, CollectionServices, services)
}

// Expenses returns all expenses.
func (c *Collections) Expenses(ctx context.Context) []models.Expense {
	out := []models.Expense{}
	c.load(ctx, CollectionExpenses, &out)
	return out
}

// SaveExpenses replaces the expense collection.
func (c *Collections) SaveExpenses(ctx context.Context, expenses []models.Expense) error {
	return c.store.Save(ctx, CollectionExpenses, expenses)
}

// Settings returns the stored settings, or the defaults when none exist.
func (c *Collections) Settings(ctx context.Context) models.Settings {
	out := models.DefaultSettings()
	c.load(ctx, CollectionSettings, &out)
	return out
}

// SaveSettings replaces the stored settings.
func (c *Collections) SaveSettings(ctx context.Context, settings models.Settings) error {
	return c.store.Save(ctx, CollectionSettings, settings)
}
