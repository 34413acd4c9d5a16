package container

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/cms/handler"
	"github.com/narwhalmedia/catalog/internal/cms/service"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// CatalogContainer holds all dependencies of the catalog process
type CatalogContainer struct {
	Config         *config.CatalogConfig
	Logger         interfaces.Logger
	EventBus       *events.InMemoryEventBus
	SearchEngine   interfaces.SearchEngine
	Programs       *service.ProgramService
	Episodes       *service.EpisodeService
	Discovery      *service.DiscoveryService
	ProgramHandler *handler.ProgramStatusEventHandler
	EpisodeHandler *handler.EpisodeStatusEventHandler
}

// Start bootstraps the search indexes, subscribes the projection handlers and starts the bus
func (c *CatalogContainer) Start(ctx context.Context) error {
	if err := c.SearchEngine.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize search engine: %w", err)
	}
	if err := handler.Register(c.EventBus, c.ProgramHandler, c.EpisodeHandler); err != nil {
		return err
	}
	if err := c.EventBus.Start(ctx); err != nil {
		return fmt.Errorf("failed to start event bus: %w", err)
	}

	c.Logger.Info("Catalog started",
		interfaces.String("search_engine", c.Config.Search.Engine),
		interfaces.Any("event_types", c.EventBus.EventTypes()))
	return nil
}

// Stop drains the bus
func (c *CatalogContainer) Stop() error {
	return c.EventBus.Stop()
}
