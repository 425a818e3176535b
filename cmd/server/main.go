// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"kosh/internal/config"
	"kosh/internal/exporter"
	"kosh/internal/handlers"
	"kosh/internal/receipts"
	"kosh/internal/routes"
	"kosh/internal/services/ledger"
	"kosh/internal/storage"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	dataFile := config.GetEnv("DATA_FILE", "data/transactions.json")
	receiptsDir := config.GetEnv("RECEIPTS_DIR", "uploads/receipts")
	publicDir := config.GetEnv("PUBLIC_DIR", "public")

	store, err := storage.New(dataFile)
	if err != nil {
		log.Fatalf("Failed to initialize transaction store: %v", err)
	}

	receiptRepo, err := receipts.New(receiptsDir)
	if err != nil {
		log.Fatalf("Failed to initialize receipt repository: %v", err)
	}

	ledgerService := ledger.NewService(store, receiptRepo, exporter.New(), ledger.Config{
		ClearDeletesReceipts: config.GetBoolEnv("CLEAR_DELETES_RECEIPTS", false),
	})
	transactionHandler := handlers.NewTransactionHandler(ledgerService)

	// Create Fiber app. The body limit leaves headroom over the receipt
	// cap for the other multipart fields.
	app := fiber.New(fiber.Config{
		BodyLimit: receipts.MaxFileSize + 1<<20,
	})

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE",
	}))

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Routes
	routes.SetupRoutes(app, transactionHandler, routes.StaticDirs{
		Receipts: receiptsDir,
		Public:   publicDir,
	})

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
