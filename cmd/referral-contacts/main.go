package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/di"
	"github.com/mikey/referral-contacts/internal/ports"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	api ports.ContactAPI,
	cache core.ContactCache,
) error {
	defer logger.Sync()

	// Start the API
	if err := api.Start(); err != nil {
		logger.Fatal("Failed to start API server", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Stop the API; this also drains pending cache writes
	if err := api.Stop(); err != nil {
		logger.Error("Failed to stop API server", zap.Error(err))
	}

	// Close the cache if needed
	if closer, ok := cache.(interface{ Close() }); ok {
		closer.Close()
	}

	logger.Info("Shutdown complete")
	return nil
}
