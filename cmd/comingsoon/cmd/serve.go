package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/onur-cay/comingsoon/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server on APP_ADDR. The server stops gracefully on
SIGINT or SIGTERM, waiting at most SHUTDOWN_TIMEOUT for open requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := server.New(cfg)
		s.RegisterRoutes()
		if err := s.Start(ctx); err != nil {
			slog.Error("Server stopped with error", "error", err)
			return err
		}
		slog.Info("Server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
