package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frostline/hvac-office/internal/db"
	"github.com/frostline/hvac-office/internal/models"
)

func seedInventory(t *testing.T, collections *db.Collections) []models.InventoryItem {
	t.Helper()
	items := []models.InventoryItem{
		{ID: models.NewID(), Name: "Filter", UnitPrice: 10, Quantity: 20, CreatedAt: time.Now()},
		{ID: models.NewID(), Name: "Capacitor", UnitPrice: 5, Quantity: 10, CreatedAt: time.Now()},
	}
	err := collections.SaveInventory(context.Background(), items)
	assert.NoError(t, err)
	return items
}

func TestServiceHandler_CreatePricesKit(t *testing.T) {
	collections := testCollections(t)
	inventory := seedInventory(t, collections)
	handler := NewServiceHandler(collections)

	svc := models.Service{
		Name:      "Seasonal Tune-Up",
		LaborCost: 20,
		Items: []models.ServiceItem{
			{InventoryItemID: inventory[0].ID, Quantity: 2},
			{InventoryItemID: inventory[1].ID, Quantity: 1},
		},
	}

	w := postJSON(t, handler, "/api/services", svc)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Service
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 45.0, created.TotalPrice)
}

func TestServiceHandler_SaveStripsZeroQuantityLines(t *testing.T) {
	collections := testCollections(t)
	inventory := seedInventory(t, collections)
	handler := NewServiceHandler(collections)

	svc := models.Service{
		Name:      "AC Recharge",
		LaborCost: 100,
		Items: []models.ServiceItem{
			{InventoryItemID: inventory[0].ID, Quantity: 0},
			{InventoryItemID: inventory[1].ID, Quantity: 3},
		},
	}

	w := postJSON(t, handler, "/api/services", svc)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Service
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created.Items, 1)
	for _, line := range created.Items {
		assert.Greater(t, line.Quantity, 0)
	}
}

func TestServiceHandler_DeletedPartPricesAsZero(t *testing.T) {
	collections := testCollections(t)
	handler := NewServiceHandler(collections)

	// No inventory seeded: every line is a dangling reference.
	svc := models.Service{
		Name:      "Legacy Kit",
		LaborCost: 50,
		Items:     []models.ServiceItem{{InventoryItemID: "gone", Quantity: 4}},
	}

	w := postJSON(t, handler, "/api/services", svc)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Service
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 50.0, created.TotalPrice)
}
