package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/frostline/hvac-office/internal/db"
	"github.com/frostline/hvac-office/internal/handlers"
	"github.com/frostline/hvac-office/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment as-is")
	}

	store := openStore()
	collections := db.NewCollections(store)

	mux := http.NewServeMux()
	mux.Handle("/api/clients", handlers.NewClientHandler(collections))
	mux.Handle("/api/invoices", handlers.NewInvoiceHandler(collections))
	mux.Handle("/api/invoices/print", handlers.NewInvoicePrintHandler(collections))
	mux.Handle("/api/inventory", handlers.NewInventoryHandler(collections))
	mux.Handle("/api/services", handlers.NewServiceHandler(collections))
	mux.Handle("/api/expenses", handlers.NewExpenseHandler(collections))
	mux.Handle("/api/settings", handlers.NewSettingsHandler(collections))
	mux.Handle("/api/dashboard", handlers.NewDashboardHandler(collections))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, middleware.RequestLogger(mux)))
}

// openStore connects to MongoDB, falling back to an in-memory store when the
// database is unreachable so the app still comes up (without durability).
func openStore() db.Store {
	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Error("Failed to connect to MongoDB, falling back to in-memory store")
		return db.NewMemoryStore()
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "hvacoffice"
	}
	log.Info("Connected to MongoDB successfully")
	return &db.MongoStore{Collection: client.Database(dbName).Collection("collections")}
}
