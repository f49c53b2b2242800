package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"spendwise/internal/charts"
	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/logger"
	"spendwise/internal/router"
	"spendwise/internal/services"

	_ "spendwise/internal/docs" // Import swagger docs
)

// @title           Spendwise API
// @version         1.0
// @description     Spendwise is a personal finance tracker for expenses and income with weekly, monthly and yearly spending analytics.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	// Aggregate amounts in API responses are JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the record store backend
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	transactionService := services.NewTransactionService(dbManager.Store(),
		services.WithClock(appConfig.Now),
		services.WithStrictStore(appConfig.StrictStore),
	)
	analyticsService := services.NewAnalyticsService(transactionService, appConfig.Now)
	categoryService := services.NewCategoryService()
	auditService := services.NewAuditService(dbManager.DB())

	r := router.New(router.Deps{
		Transactions: transactionService,
		Analytics:    analyticsService,
		Categories:   categoryService,
		Audit:        auditService,
		Renderer:     charts.NewRenderer(appConfig.CurrencySymbol),
		Location:     appConfig.Location,
	})

	log.Infow("Starting Spendwise server",
		"port", appConfig.Port,
		"driver", appConfig.DBDriver,
		"timezone", appConfig.Location.String(),
		"strict_store", appConfig.StrictStore,
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return r.Run(":" + appConfig.Port)
}
