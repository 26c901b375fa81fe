package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/onur-cay/comingsoon/internal/config"
	"github.com/onur-cay/comingsoon/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "comingsoon",
	Short: "Serve or export the coming soon page",
	Long: `comingsoon serves the placeholder page announcing the upcoming website,
or exports it as static files for any static host.

Available commands:
  serve     Start the HTTP server
  export    Write index.html and assets to a directory
  version   Print the version

Configuration is read from the environment (and a .env file if present).`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err := adjustMaxProcs(logger); err != nil {
		logger.Warn("Could not adjust GOMAXPROCS", "error", err)
	}
	return cfg, nil
}

// adjustMaxProcs matches GOMAXPROCS to the container CPU quota, reporting
// through slog instead of the standard logger.
func adjustMaxProcs(logger *slog.Logger) error {
	_, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
	return err
}
