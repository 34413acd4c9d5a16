package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/narwhalmedia/catalog/internal/container"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	c, cleanup, err := container.InitializeCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build catalog: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	log := c.Logger
	log.Info("Catalog service starting",
		interfaces.String("version", config.GetServiceVersion(&cfg.Service)),
		interfaces.String("environment", cfg.Service.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.Start(ctx); err != nil {
		log.Error("Failed to start catalog", interfaces.Error(err))
		stop()
		cleanup()
		os.Exit(1)
	}

	// Wait for interrupt signal
	<-ctx.Done()
	log.Info("Shutting down...")

	if err := c.Stop(); err != nil {
		log.Error("Failed to stop event bus", interfaces.Error(err))
	}
	log.Info("Catalog service stopped")
}
