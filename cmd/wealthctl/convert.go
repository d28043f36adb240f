package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"wealthtrack/internal/app"
	"wealthtrack/internal/config"
	"wealthtrack/internal/fx"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/validator"
)

func newConvertCmd(timeout *time.Duration) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Convert a USD amount to EUR at the current or a historical rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("bad amount %q: %w", args[0], err)
			}

			var date *time.Time
			if dateStr != "" {
				d, err := time.Parse(validator.DateLayout, dateStr)
				if err != nil {
					return fmt.Errorf("bad --date: %w", err)
				}
				date = &d
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			collab := app.NewCollaborators(cfg, nil)
			converter := fx.NewConverter(collab.Rates, cfg.FXFallbackRate, logger.Named("fx"))

			ctx, cancel := commandContext(cmd, *timeout)
			defer cancel()

			var rate fx.ExchangeRate
			var converted decimal.Decimal
			if date == nil {
				rate = converter.GetCurrentExchangeRate(ctx)
				converted = converter.ConvertToReportingCurrency(ctx, amount)
			} else {
				rate = converter.GetHistoricalExchangeRate(ctx, *date)
				converted = converter.ConvertToReportingCurrencyHistorical(ctx, amount, *date)
			}
			return renderConversion(cmd.OutOrStdout(), amount, converted, rate)
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", "", "historical date (YYYY-MM-DD); current rate when empty")
	return cmd
}
