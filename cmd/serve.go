package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/api"
	"github.com/killallgit/minutes-api/api/types"
	"github.com/killallgit/minutes-api/internal/services/cleanup"
	"github.com/killallgit/minutes-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Minutes API server with the configured settings.

The server keeps transcription workspaces in memory and exposes them
under /api/v1. API documentation is served at /docs.

Example:
  minutes-api serve
  minutes-api serve --port 9090
  minutes-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := appConfig

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := newApplication(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if app.diagnostics != nil && cfg.Diagnostics.Retention > 0 {
		pruner := cleanup.NewService(app.diagnostics, cfg.Diagnostics.Retention, cfg.Diagnostics.PruneInterval, logger.Named("cleanup"))
		pruner.Start(ctx)
		defer pruner.Stop()
	}

	server := api.NewServer(serverOptions(cfg, serverHost, serverPort), &types.Dependencies{
		DB:          app.db,
		Workspaces:  app.workspaces,
		Diagnostics: app.diagnostics,
		Catalog:     app.catalog,
		Logger:      logger.Named("http"),
		Build:       buildInfo(),
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	logger.Info("server started",
		zap.String("address", fmt.Sprintf("%s:%d", serverHost, serverPort)),
		zap.String("version", Version),
		zap.String("default_model", cfg.Models.Default),
		zap.Bool("diagnostics", app.diagnostics != nil))

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
	case runErr = <-serverErr:
		logger.Error("shutting down server", zap.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("server gracefully stopped")
	return runErr
}

// serverOptions maps the configuration onto HTTP server options
func serverOptions(cfg *config.Config, host string, port int) api.Options {
	return api.Options{
		Address:          fmt.Sprintf("%s:%d", host, port),
		ReadTimeout:      cfg.Server.ReadTimeout,
		WriteTimeout:     cfg.Server.WriteTimeout,
		MaxHeaderBytes:   cfg.Server.MaxHeaderBytes,
		MaxRequestBytes:  cfg.Server.MaxRequestBytes,
		EnableCORS:       cfg.Security.EnableCORS,
		CORSOrigins:      cfg.Security.CORSOrigins,
		RateLimitEnabled: cfg.RateLimiting.Enabled,
		RateLimitRPS:     cfg.RateLimiting.RPS,
		RateLimitBurst:   cfg.RateLimiting.Burst,
	}
}
