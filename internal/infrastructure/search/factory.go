package search

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/cms/constants"
	gormstore "github.com/narwhalmedia/catalog/internal/infrastructure/persistence/gorm"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// KnownIndexes lists the indexes every engine bootstraps.
var KnownIndexes = []string{constants.ProgramsIndex, constants.EpisodesIndex}

// NewEngine selects the adapter named by cfg.Engine. db is only used by the
// database engine and may be nil otherwise.
func NewEngine(cfg config.SearchConfig, db *gorm.DB, logger interfaces.Logger) (interfaces.SearchEngine, error) {
	switch cfg.Engine {
	case config.SearchEngineMemory:
		return NewMemoryEngine(logger, KnownIndexes...), nil
	case config.SearchEngineDatabase:
		if db == nil {
			return nil, fmt.Errorf("search engine %q requires a database", cfg.Engine)
		}
		return gormstore.NewSearchEngine(db, logger, KnownIndexes...), nil
	default:
		return nil, fmt.Errorf("unknown search engine: %q", cfg.Engine)
	}
}
