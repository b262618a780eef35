package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/factorlens/internal/analysis"
	"github.com/wonny/factorlens/internal/api"
	"github.com/wonny/factorlens/internal/api/handlers"
	"github.com/wonny/factorlens/internal/registry"
	"github.com/wonny/factorlens/internal/series"
	"github.com/wonny/factorlens/pkg/config"
	"github.com/wonny/factorlens/pkg/database"
	"github.com/wonny/factorlens/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                  - Health check
  GET  /api/tickers             - Analyzable stock universe
  GET  /api/factors             - Supported factors
  GET  /api/analysis/{symbol}   - Full analysis payload

Example:
  go run ./cmd/factorlens api
  go run ./cmd/factorlens api --port 8090`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Build components
	reg := registry.Default()
	repo := series.NewRepository(db.Pool)
	analyzer := analysis.New(log)

	// 5. Create handlers and router
	analysisHandler := handlers.NewAnalysisHandler(repo, analyzer, reg, cfg, log)
	tickerHandler := handlers.NewTickerHandler(reg, log)
	router := api.NewRouter(analysisHandler, tickerHandler, log)

	// 6. Start server with graceful shutdown
	server := api.New(cfg, log, router)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
