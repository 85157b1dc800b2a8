package cli

import (
	"fmt"
	"os"

	"atelier_backend/internal/config"
	"atelier_backend/internal/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Atelier - dressmaking studio backend",
	Long: `Atelier serves the studio website API: the dress portfolio, custom
order requests, freelancer applications, contact messages and the newsletter.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and initialises the logger for the configured environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Server.Env)
	return cfg, nil
}
