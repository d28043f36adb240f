// Package app wires configuration, storage, collaborators and services into
// a runnable API. Both binaries build on it.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wealthtrack/internal/config"
	"wealthtrack/internal/fx"
	"wealthtrack/internal/handlers"
	"wealthtrack/internal/middleware"
	"wealthtrack/internal/quote"
	"wealthtrack/internal/repository"
	"wealthtrack/internal/services"
	"wealthtrack/internal/valuation"
	"wealthtrack/internal/yahoo"
)

// Collaborators are the external data sources the valuation depends on.
type Collaborators struct {
	Quotes quote.Fetcher
	Rates  fx.RateFetcher
}

// NewCollaborators builds the Yahoo quote fetcher and the configured rate
// sources. Historical rates always come from Frankfurter; the current rate
// comes from FX_CURRENT_PROVIDER. Rates are cached.
func NewCollaborators(cfg *config.Config, httpClient *http.Client) Collaborators {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	chart := yahoo.NewClient(httpClient, cfg.YahooChartBaseURL)
	frankfurter := fx.NewFrankfurterRates(httpClient, cfg.FrankfurterBaseURL)

	var current fx.RateFetcher = fx.NewYahooRates(chart)
	if cfg.FXCurrentProvider == "frankfurter" {
		current = frankfurter
	}

	return Collaborators{
		Quotes: quote.NewYahooFetcher(chart),
		Rates:  fx.NewCached(fx.Sources{Current: current, Historical: frankfurter}, cfg.FXCacheTTL),
	}
}

// App holds the assembled services.
type App struct {
	Config    *config.Config
	DB        *gorm.DB
	Rates     *fx.Converter
	Holdings  services.HoldingServicer
	Portfolio services.PortfolioServicer
	Snapshots services.SnapshotServicer
}

// New assembles the application on top of db and the given collaborators.
func New(cfg *config.Config, db *gorm.DB, collab Collaborators, log *zap.SugaredLogger) *App {
	holdingStore := repository.NewHoldingStore(db)
	snapshotStore := repository.NewSnapshotStore(db)

	converter := fx.NewConverter(collab.Rates, cfg.FXFallbackRate, log.Named("fx"))
	resolver := quote.NewResolver(collab.Quotes, converter, log.Named("quote"))
	valuer := valuation.NewValuer(resolver, cfg.ValuationConcurrency, log.Named("valuation"))

	return &App{
		Config:   cfg,
		DB:       db,
		Rates:    converter,
		Holdings: services.NewHoldingService(holdingStore, cfg.SnapshotTimezone),
		Portfolio: services.NewPortfolioService(holdingStore, snapshotStore, valuer, converter, services.PortfolioOptions{
			HistoryDays:   cfg.HistoryDays,
			HistoryMonths: cfg.MonthlyHistoryMonths,
			Location:      cfg.SnapshotTimezone,
		}),
		Snapshots: services.NewSnapshotService(holdingStore, snapshotStore, valuer, cfg.SnapshotTimezone, log.Named("snapshot")),
	}
}

// Router builds the Gin engine with every route registered.
func (a *App) Router() *gin.Engine {
	holdingHandler := handlers.NewHoldingHandler(a.Holdings)
	portfolioHandler := handlers.NewPortfolioHandler(a.Portfolio)
	snapshotHandler := handlers.NewSnapshotHandler(a.Snapshots)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	holdings := v1.Group("/holdings")
	holdings.POST("", holdingHandler.CreateHolding)
	holdings.GET("", holdingHandler.ListHoldings)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)

	portfolio := v1.Group("/portfolio")
	portfolio.GET("/statistics", portfolioHandler.GetStatistics)
	portfolio.GET("/profit-rates", portfolioHandler.GetProfitRates)
	portfolio.GET("/history/evolution", portfolioHandler.GetEvolution)
	portfolio.GET("/history/daily-changes", portfolioHandler.GetDailyChanges)
	portfolio.GET("/history/monthly", portfolioHandler.GetMonthlyWealth)
	portfolio.GET("/snapshots/latest", portfolioHandler.GetLatestSnapshot)
	portfolio.GET("/exchange-rate", portfolioHandler.GetExchangeRate)

	// Pipeline routes (shared-secret auth, no user auth)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.TriggerAuth(a.Config.CronSecret))
	pipeline.POST("/snapshots", snapshotHandler.TriggerSnapshot)
	pipeline.GET("/snapshots", snapshotHandler.TriggerSnapshot)

	return router
}
