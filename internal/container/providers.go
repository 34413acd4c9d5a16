package container

import (
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/cms/service"
	gormstore "github.com/narwhalmedia/catalog/internal/infrastructure/persistence/gorm"
	"github.com/narwhalmedia/catalog/internal/infrastructure/search"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

// ProvideLogger builds the process logger from the logger section
func ProvideLogger(cfg *config.CatalogConfig) (interfaces.Logger, func(), error) {
	zl, err := logger.Build(logger.Options{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		Development: cfg.Logger.Development,
		OutputPath:  cfg.Logger.OutputPath,
		Fields: map[string]interface{}{
			"service": cfg.Service.Name,
			"version": config.GetServiceVersion(&cfg.Service),
		},
	})
	if err != nil {
		return nil, nil, err
	}
	return zl, func() { _ = zl.Sync() }, nil
}

// ProvideEventBus creates the in-process bus with the configured fan-out bound
func ProvideEventBus(cfg *config.CatalogConfig, log interfaces.Logger) *events.InMemoryEventBus {
	return events.NewInMemoryEventBus(log, events.WithMaxConcurrency(cfg.EventBus.MaxConcurrency))
}

// ProvideDatabase opens and migrates the projection store. The memory search
// engine needs no database and gets nil.
func ProvideDatabase(cfg *config.CatalogConfig, log interfaces.Logger) (*gorm.DB, func(), error) {
	if cfg.Search.Engine != config.SearchEngineDatabase {
		return nil, func() {}, nil
	}

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Warn("Failed to close database", interfaces.Error(err))
		}
	}

	if err := database.NewMigrator(db, log, gormstore.Migrations()...).Migrate(); err != nil {
		cleanup()
		return nil, nil, err
	}
	return db, cleanup, nil
}

// ProvideSearchEngine selects the configured search adapter
func ProvideSearchEngine(cfg *config.CatalogConfig, db *gorm.DB, log interfaces.Logger) (interfaces.SearchEngine, error) {
	return search.NewEngine(cfg.Search, db, log)
}

// ProvideListConfig maps the pagination section onto list bounds
func ProvideListConfig(cfg *config.CatalogConfig) service.ListConfig {
	return service.ListConfig{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}
}
