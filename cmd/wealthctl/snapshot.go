package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(timeout *time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Value the portfolio and record today's snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, closeApp, err := openApp()
			if err != nil {
				return err
			}
			defer closeApp()

			ctx, cancel := commandContext(cmd, *timeout)
			defer cancel()

			result, err := application.Snapshots.TriggerSnapshot(ctx)
			if err != nil {
				return fmt.Errorf("snapshot failed: %w", err)
			}
			return renderSnapshotResult(cmd.OutOrStdout(), result)
		},
	}
}
