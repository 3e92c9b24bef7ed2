// Command seeder populates a running hvac-office server with demo data:
// a handful of clients, stocked parts, service kits, invoices and expenses.
// Useful for trying out the dashboard without typing everything in by hand.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/frostline/hvac-office/internal/models"
)

func apiURL() string {
	url := os.Getenv("API_URL")
	if url == "" {
		url = "http://localhost:8080"
	}
	return url
}

// post sends payload to path and decodes the created entity into out.
func post(path string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(apiURL()+path, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func seedClients() []models.Client {
	seeds := []models.Client{
		{Name: "Marisol Vega", Email: "marisol.vega@example.com", Phone: "555-0142", Address: "118 Birchwood Ln", Type: models.ClientResidential},
		{Name: "Hargrove Dental Group", Email: "facilities@hargrovedental.example.com", Phone: "555-0178", Address: "2200 Commerce Pkwy, Suite 4", Type: models.ClientCommercial},
		{Name: "Ted Okafor", Email: "t.okafor@example.com", Phone: "555-0116", Address: "77 Quarry Rd", Type: models.ClientResidential},
		{Name: "Lakeview Brewing Co.", Email: "ops@lakeviewbrewing.example.com", Phone: "555-0190", Address: "9 Dockside Ave", Type: models.ClientCommercial},
	}

	var created []models.Client
	for _, seed := range seeds {
		var client models.Client
		if err := post("/api/clients", seed, &client); err != nil {
			log.WithError(err).WithField("client", seed.Name).Error("Failed to create client")
			continue
		}
		created = append(created, client)
	}
	log.WithField("created_clients", len(created)).Info("Client seeding completed")
	return created
}

func seedInventory() []models.InventoryItem {
	seeds := []models.InventoryItem{
		{Name: "MERV-13 Filter 20x25", Description: "Pleated air filter", Quantity: 40, UnitPrice: 18.50},
		{Name: "Run Capacitor 45/5 uF", Description: "Dual run capacitor, 440V", Quantity: 12, UnitPrice: 23.00},
		{Name: "R-410A Refrigerant (lb)", Quantity: 60, UnitPrice: 9.75},
		{Name: "Condensate Pump", Description: "120V safety-switch pump", Quantity: 6, UnitPrice: 64.00},
		{Name: "Smart Thermostat", Description: "Wi-Fi, 2-stage", Quantity: 8, UnitPrice: 139.99},
	}

	var created []models.InventoryItem
	for _, seed := range seeds {
		var item models.InventoryItem
		if err := post("/api/inventory", seed, &item); err != nil {
			log.WithError(err).WithField("item", seed.Name).Error("Failed to create inventory item")
			continue
		}
		created = append(created, item)
	}
	log.WithField("created_items", len(created)).Info("Inventory seeding completed")
	return created
}

func seedServices(inventory []models.InventoryItem) {
	if len(inventory) < 3 {
		log.Warn("Not enough inventory to seed services, skipping")
		return
	}

	seeds := []models.Service{
		{
			Name:        "Seasonal Tune-Up",
			Description: "Full system inspection, filter change and coil cleaning",
			Items: []models.ServiceItem{
				{InventoryItemID: inventory[0].ID, Quantity: 1},
			},
			LaborCost: 120,
		},
		{
			Name:        "AC Recharge",
			Description: "Leak check and refrigerant top-up",
			Items: []models.ServiceItem{
				{InventoryItemID: inventory[2].ID, Quantity: 4},
				{InventoryItemID: inventory[1].ID, Quantity: 1},
			},
			LaborCost: 180,
		},
	}

	count := 0
	for _, seed := range seeds {
		if err := post("/api/services", seed, nil); err != nil {
			log.WithError(err).WithField("service", seed.Name).Error("Failed to create service")
			continue
		}
		count++
	}
	log.WithField("created_services", count).Info("Service seeding completed")
}

func seedInvoices(clients []models.Client) {
	if len(clients) < 2 {
		log.Warn("Not enough clients to seed invoices, skipping")
		return
	}

	now := time.Now()
	seeds := []models.Invoice{
		{
			ClientID:  clients[0].ID,
			IssueDate: now.AddDate(0, 0, -12),
			DueDate:   now.AddDate(0, 0, 18),
			Status:    models.InvoicePaid,
			Items: []models.InvoiceItem{
				{Description: "Seasonal tune-up", Quantity: 1, UnitPrice: 149, IsMaintenance: true},
				{Description: "MERV-13 filter", Quantity: 2, UnitPrice: 24.50},
			},
		},
		{
			ClientID:  clients[1].ID,
			IssueDate: now.AddDate(0, 0, -5),
			DueDate:   now.AddDate(0, 0, 25),
			Status:    models.InvoiceSent,
			Notes:     "Rooftop unit #2, access through the service corridor.",
			Items: []models.InvoiceItem{
				{Description: "3-ton condenser unit", Quantity: 1, UnitPrice: 2890, IsNewEquipment: true},
				{Description: "Installation labor", Quantity: 6, UnitPrice: 95},
			},
		},
		{
			ClientID:  clients[0].ID,
			IssueDate: now.AddDate(0, -1, 0),
			DueDate:   now,
			Status:    models.InvoicePaid,
			Items: []models.InvoiceItem{
				{Description: "Condensate pump replacement", Quantity: 1, UnitPrice: 210},
			},
		},
	}

	count := 0
	for _, seed := range seeds {
		if err := post("/api/invoices", seed, nil); err != nil {
			log.WithError(err).WithField("client_id", seed.ClientID).Error("Failed to create invoice")
			continue
		}
		count++
	}
	log.WithField("created_invoices", count).Info("Invoice seeding completed")
}

func seedExpenses() {
	now := time.Now()
	seeds := []models.Expense{
		{Description: "Refrigerant restock", Amount: 485.00, Date: now.AddDate(0, 0, -9), Category: models.ExpenseMaterials},
		{Description: "Van fuel", Amount: 96.40, Date: now.AddDate(0, 0, -3), Category: models.ExpenseFuel},
		{Description: "Vacuum pump service", Amount: 75.00, Date: now.AddDate(0, 0, -20), Category: models.ExpenseTools},
		{Description: "Local radio spot", Amount: 250.00, Date: now.AddDate(0, -1, -2), Category: models.ExpenseMarketing},
	}

	count := 0
	for _, seed := range seeds {
		if err := post("/api/expenses", seed, nil); err != nil {
			log.WithError(err).WithField("expense", seed.Description).Error("Failed to create expense")
			continue
		}
		count++
	}
	log.WithField("created_expenses", count).Info("Expense seeding completed")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment as-is")
	}

	log.WithField("api_url", apiURL()).Info("Seeding demo data")

	clients := seedClients()
	if len(clients) == 0 {
		log.Error("No clients created. Ensure the API is reachable. Exiting.")
		os.Exit(1)
	}
	inventory := seedInventory()
	seedServices(inventory)
	seedInvoices(clients)
	seedExpenses()

	log.Info("Demo data seeding finished")
}
