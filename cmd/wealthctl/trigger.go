package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wealthtrack/internal/client"
)

func newTriggerCmd(timeout *time.Duration) *cobra.Command {
	var (
		baseURL string
		secret  string
	)

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Ask a running API to record today's snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				secret = strings.TrimSpace(os.Getenv("CRON_SECRET"))
			}
			if secret == "" {
				return fmt.Errorf("missing secret: set --secret or env CRON_SECRET")
			}
			if baseURL == "" {
				return fmt.Errorf("missing --url (e.g. http://localhost:8080)")
			}

			ctx, cancel := commandContext(cmd, *timeout)
			defer cancel()

			c := client.NewPipelineClient(baseURL, secret, &http.Client{Timeout: *timeout})
			result, err := c.TriggerSnapshot(ctx)
			if err != nil {
				return err
			}
			return renderSnapshotResult(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", os.Getenv("WEALTHTRACK_URL"), "API base URL")
	cmd.Flags().StringVar(&secret, "secret", "", "trigger secret (default env CRON_SECRET)")
	return cmd
}
