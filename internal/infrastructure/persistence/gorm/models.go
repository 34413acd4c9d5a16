package gorm

import (
	"time"
)

// SearchIndexModel registers an index created by Initialize
type SearchIndexModel struct {
	Name      string    `gorm:"primaryKey;size:64"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SearchIndexModel) TableName() string {
	return "search_indexes"
}

// SearchDocumentModel stores one indexed document as JSON. Content holds the
// lowercased string fields for text matching.
type SearchDocumentModel struct {
	IndexName string    `gorm:"primaryKey;size:64"`
	DocID     string    `gorm:"primaryKey;size:64"`
	Body      string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SearchDocumentModel) TableName() string {
	return "search_documents"
}
