package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/database"
)

// Migrations returns the schema history of the search projection store
func Migrations() []database.MigrationEntry {
	return []database.MigrationEntry{
		{
			Version: "20240601_001",
			Name:    "Create search tables",
			Up:      migration001CreateSearchTables,
		},
		{
			Version: "20240601_002",
			Name:    "Index documents by index and creation time",
			Up:      migration002AddListingIndex,
		},
	}
}

func migration001CreateSearchTables(tx *gorm.DB) error {
	if err := tx.AutoMigrate(&SearchIndexModel{}, &SearchDocumentModel{}); err != nil {
		return fmt.Errorf("failed to migrate search models: %w", err)
	}
	return nil
}

func migration002AddListingIndex(tx *gorm.DB) error {
	stmt := "CREATE INDEX IF NOT EXISTS idx_search_documents_index_created ON search_documents(index_name, created_at)"
	if err := tx.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to create listing index: %w", err)
	}
	return nil
}
