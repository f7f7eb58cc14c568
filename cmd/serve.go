package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/distant-reading/internal/dashboard"
	"github.com/ziadkadry99/distant-reading/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live dashboard",
	Long: `Loads the analysis results once and serves the dashboard over HTTP.
Navigation and theme tabs update the page in place over a websocket; every
selection also has its own URL. If the data cannot be loaded the dashboard
still starts and shows the load error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		doc, err := loadDocument(ctx, cfg)
		if err != nil {
			logger.Error("Error loading analysis data", zap.String("source", cfg.DataPath), zap.Error(err))
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, logger)
		dashboard.New(doc, cfg.ViewOptions(), cfg.Title, logger).RegisterRoutes(srv.Router())

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Shutdown failed", zap.Error(err))
			}
		}()

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
