package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"nairagate.com/internal/application/usecase"
	"nairagate.com/internal/infrastructure/config"
	"nairagate.com/internal/infrastructure/crypto"
	"nairagate.com/internal/infrastructure/ethrpc"
	httphandler "nairagate.com/internal/infrastructure/http"
	"nairagate.com/internal/infrastructure/logger"
	"nairagate.com/internal/infrastructure/nonce"
	"nairagate.com/internal/infrastructure/registry"

	"github.com/spf13/cobra"
)

const serverDir = "server"

var apiServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Run API Server.",
	RunE: func(_ *cobra.Command, _ []string) error {
		// Initialize logger
		appLogger := logger.NewLogger()

		// Get config directory (relative to where the binary is run from)
		configDir := filepath.Join("cmd", "config", serverDir)
		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			// Try absolute path from project root
			configDir = filepath.Join(".", "cmd", "config", serverDir)
		}

		// Load configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			appLogger.LogError(context.TODO(), "Failed to load config", err)
			return fmt.Errorf("failed to load config: %w", err)
		}

		appLogger.LogInfo(context.TODO(), "Configuration loaded",
			"port", cfg.Server.Port,
			"rpc_endpoints", len(cfg.Chain.RPCURLs))

		if cfg.Payload.PublicKeyPEM == "" {
			appLogger.LogWarning(context.TODO(),
				"No payload public key configured; /transfers/seal will reject every request")
		}

		// Initialize infrastructure adapters
		networkRegistry := registry.NewStatic()
		chainClient, err := ethrpc.NewClient(cfg.Chain.RPCURLs, &http.Client{Timeout: 15 * time.Second})
		if err != nil {
			appLogger.LogError(context.TODO(), "Failed to initialize chain client", err)
			return fmt.Errorf("failed to initialize chain client: %w", err)
		}

		// Initialize use cases
		getBalanceUseCase := usecase.NewGetWalletBalanceUseCase(networkRegistry, chainClient)
		sealTransferUseCase := usecase.NewSealTransferUseCase(
			networkRegistry,
			crypto.NewRSAEncryptor(),
			nonce.NewGenerator(),
			cfg.Payload.PublicKeyPEM,
		)

		// Initialize HTTP handler
		handler := httphandler.NewHandler(
			getBalanceUseCase,
			sealTransferUseCase,
			networkRegistry,
			appLogger,
		)

		// Setup routes
		mux := handler.SetupRoutes()

		// Create HTTP server
		addr := ":" + cfg.Server.Port
		server := &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Channel to capture termination signals
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		// Error channel to capture errors from server
		errChan := make(chan error, 1)

		// Start server in a goroutine
		go func() {
			appLogger.LogInfo(context.TODO(), "Starting server",
				"address", addr,
				"networks", len(cfg.Chain.RPCURLs))
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- err
			}
		}()

		// Graceful shutdown
		select {
		case <-signalChan:
			appLogger.LogInfo(context.TODO(), "Received termination signal. Initiating graceful shutdown...")

			// Create shutdown context with timeout
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				appLogger.LogError(context.TODO(), "Server forced to shutdown", err)
				return err
			}

			appLogger.LogInfo(context.TODO(), "Server stopped gracefully")
		case err := <-errChan:
			appLogger.LogError(context.TODO(), "Server error", err)
			return err
		}

		return nil
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(apiServerCmd)
}
