// Package router assembles the HTTP API.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spendwise/internal/charts"
	"spendwise/internal/handlers"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

// Deps are the services the API is built from.
type Deps struct {
	Transactions services.TransactionServicer
	Analytics    services.AnalyticsServicer
	Categories   services.CategoryServicer
	Audit        services.AuditServicer
	Renderer     *charts.Renderer
	// Location interprets bare YYYY-MM-DD dates in requests.
	Location *time.Location
}

// New returns a gin engine with every route registered.
func New(d Deps) *gin.Engine {
	validator.Register()

	if d.Renderer == nil {
		d.Renderer = charts.NewRenderer("")
	}
	if d.Audit == nil {
		d.Audit = services.NewAuditService(nil)
	}

	transactionHandler := handlers.NewTransactionHandler(d.Transactions, d.Audit, d.Location)
	analyticsHandler := handlers.NewAnalyticsHandler(d.Analytics, d.Renderer)
	categoryHandler := handlers.NewCategoryHandler(d.Categories)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	expenses := v1.Group("/expenses")
	expenses.GET("", transactionHandler.ListExpenses)
	expenses.POST("", transactionHandler.CreateExpense)
	expenses.DELETE("/:id", transactionHandler.DeleteExpense)

	income := v1.Group("/income")
	income.GET("", transactionHandler.ListIncome)
	income.POST("", transactionHandler.CreateIncome)
	income.DELETE("/:id", transactionHandler.DeleteIncome)

	v1.GET("/transactions", transactionHandler.ListTransactions)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:type/:code", categoryHandler.GetCategory)

	analytics := v1.Group("/analytics")
	analytics.GET("/cash-in-hand", analyticsHandler.GetCashInHand)
	analytics.GET("/series/:period", analyticsHandler.GetSeries)
	analytics.GET("/series/:period/chart.png", analyticsHandler.GetSeriesChart)
	analytics.GET("/categories", analyticsHandler.GetCategoryBreakdown)
	analytics.GET("/categories/chart.png", analyticsHandler.GetCategoryChart)

	return router
}
