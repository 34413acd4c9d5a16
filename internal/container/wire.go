//go:build wireinject
// +build wireinject

package container

import (
	"github.com/google/wire"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/internal/cms/handler"
	"github.com/narwhalmedia/catalog/internal/cms/indexer"
	"github.com/narwhalmedia/catalog/internal/cms/repository/memory"
	"github.com/narwhalmedia/catalog/internal/cms/service"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// InitializeCatalog creates the catalog container with all dependencies
func InitializeCatalog(cfg *config.CatalogConfig) (*CatalogContainer, func(), error) {
	wire.Build(
		// Infrastructure
		ProvideLogger,
		ProvideEventBus,
		wire.Bind(new(interfaces.EventBus), new(*events.InMemoryEventBus)),
		ProvideDatabase,
		ProvideSearchEngine,

		// Repositories
		memory.NewProgramRepository,
		wire.Bind(new(domain.ProgramRepository), new(*memory.ProgramRepository)),
		memory.NewEpisodeRepository,
		wire.Bind(new(domain.EpisodeRepository), new(*memory.EpisodeRepository)),

		// Use cases
		ProvideListConfig,
		service.NewProgramService,
		service.NewEpisodeService,
		service.NewDiscoveryService,

		// Projections
		indexer.NewProgramIndexer,
		wire.Bind(new(handler.ProgramProjector), new(*indexer.ProgramIndexer)),
		indexer.NewEpisodeIndexer,
		wire.Bind(new(handler.EpisodeProjector), new(*indexer.EpisodeIndexer)),
		handler.NewProgramStatusEventHandler,
		handler.NewEpisodeStatusEventHandler,

		// Container
		wire.Struct(new(CatalogContainer), "*"),
	)

	return nil, nil, nil
}
