package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wealthtrack/internal/app"
	"wealthtrack/internal/config"
	"wealthtrack/internal/database"
	"wealthtrack/internal/logger"
)

func newRootCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wealthctl",
		Short: "Operate a wealthtrack portfolio from the command line",
		Long: `wealthctl values the portfolio, records daily snapshots and converts
amounts between USD and EUR.

It reads the same environment (and .env file) as the API server. The
trigger command only needs the API URL and the trigger secret.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for the command")

	cmd.AddCommand(
		newSnapshotCmd(&timeout),
		newStatsCmd(&timeout),
		newConvertCmd(&timeout),
		newDepositCmd(&timeout),
		newTriggerCmd(&timeout),
	)
	return cmd
}

// openApp connects to the database and assembles the services. The returned
// func releases the connection.
func openApp() (*app.App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	application := app.New(cfg, dbManager.DB(), app.NewCollaborators(cfg, nil), logger.Get())
	return application, func() { _ = dbManager.Close() }, nil
}

func commandContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}
