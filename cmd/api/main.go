package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wealthtrack/internal/app"
	"wealthtrack/internal/config"
	"wealthtrack/internal/database"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/scheduler"
	"wealthtrack/internal/validator"

	_ "wealthtrack/internal/docs" // Import swagger docs
)

// @title           Wealthtrack API
// @version         1.0
// @description     Wealthtrack values a personal portfolio of market-tracked and fixed-rate holdings in EUR and records a daily snapshot for history charts.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	application := app.New(appConfig, dbManager.DB(), app.NewCollaborators(appConfig, nil), log)

	if appConfig.SnapshotCron != "" {
		task, err := scheduler.NewScheduledTask(appConfig.SnapshotCron, appConfig.SnapshotTimezone,
			scheduler.SnapshotJob(application.Snapshots, 2*time.Minute, logger.Named("scheduler")))
		if err != nil {
			return fmt.Errorf("invalid SNAPSHOT_CRON %q: %w", appConfig.SnapshotCron, err)
		}
		defer task.Cancel()
		log.Infof("In-process snapshot scheduled (%s), next run %s", appConfig.SnapshotCron, task.Next().Format(time.RFC3339))
	}
	if appConfig.CronSecret == "" {
		log.Warn("CRON_SECRET is not set; the snapshot trigger endpoint is disabled")
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           application.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Wealthtrack server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
