package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"wealthtrack/internal/app"
	"wealthtrack/internal/config"
	"wealthtrack/internal/fx"
	"wealthtrack/internal/interest"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/validator"
)

func newDepositCmd(timeout *time.Duration) *cobra.Command {
	var (
		atStr string
		usd   bool
	)

	cmd := &cobra.Command{
		Use:   "deposit <principal> <annual-rate> <investment-date>",
		Short: "Value a fixed-rate deposit with daily compounding",
		Long: `deposit compounds principal daily at annual-rate/365 from investment-date
until --at (today when empty).

With --usd the principal is read as USD and converted to EUR at the rate
of the investment date before compounding.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("bad principal %q: %w", args[0], err)
			}
			rate, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("bad annual rate %q: %w", args[1], err)
			}
			invested, err := time.Parse(validator.DateLayout, args[2])
			if err != nil {
				return fmt.Errorf("bad investment date: %w", err)
			}
			at := time.Now().UTC()
			if atStr != "" {
				if at, err = time.Parse(validator.DateLayout, atStr); err != nil {
					return fmt.Errorf("bad --at: %w", err)
				}
			}

			var value decimal.Decimal
			if usd {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				converter := fx.NewConverter(app.NewCollaborators(cfg, nil).Rates, cfg.FXFallbackRate, logger.Named("fx"))

				ctx, cancel := commandContext(cmd, *timeout)
				defer cancel()
				value, err = interest.CurrentValueFromForeign(ctx, converter, principal, rate, invested, at)
				if err != nil {
					return err
				}
			} else {
				value, err = interest.CurrentValue(principal, rate, invested, at)
				if err != nil {
					return err
				}
			}
			return renderDeposit(cmd.OutOrStdout(), value, interest.ElapsedDays(invested, at), at)
		},
	}
	cmd.Flags().StringVar(&atStr, "at", "", "evaluation date (YYYY-MM-DD); today when empty")
	cmd.Flags().BoolVar(&usd, "usd", false, "principal is in USD")
	return cmd
}
