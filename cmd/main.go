package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campaign-wizard/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

// rootCmd loads configuration and the logger before any subcommand runs.
var rootCmd = &cobra.Command{
	Use:   "campaign-wizard",
	Short: "Campaign configuration wizard API",
	Long: `campaign-wizard serves the onboarding, campaign setup, creative,
ad set and launch steps of the campaign wizard over HTTP.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger = cfg.Log.NewLogger(os.Stdout)
		return nil
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
