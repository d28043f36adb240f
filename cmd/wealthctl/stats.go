package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newStatsCmd(timeout *time.Duration) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print portfolio statistics and projected profit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			application, closeApp, err := openApp()
			if err != nil {
				return err
			}
			defer closeApp()

			ctx, cancel := commandContext(cmd, *timeout)
			defer cancel()

			report, err := application.Portfolio.GetStatistics(ctx)
			if err != nil {
				return fmt.Errorf("statistics failed: %w", err)
			}
			rates, err := application.Portfolio.GetProfitRates(ctx)
			if err != nil {
				return fmt.Errorf("profit rates failed: %w", err)
			}
			return renderStats(cmd.OutOrStdout(), format, report, rates)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}
