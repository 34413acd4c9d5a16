package indexer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/constants"
	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// ProgramIndexer projects program events into the programs index.
type ProgramIndexer struct {
	engine interfaces.SearchEngine
	logger interfaces.Logger
}

// NewProgramIndexer creates a new program indexer
func NewProgramIndexer(engine interfaces.SearchEngine, logger interfaces.Logger) *ProgramIndexer {
	return &ProgramIndexer{engine: engine, logger: logger}
}

// Index writes the published program as a search document.
func (i *ProgramIndexer) Index(ctx context.Context, event *domain.ProgramPublished) error {
	doc := ProgramDocument(event)
	if err := i.engine.Index(ctx, constants.ProgramsIndex, doc); err != nil {
		return fmt.Errorf("index program %s: %w", event.ProgramID, err)
	}
	i.logger.Debug("Indexed program",
		interfaces.String("program_id", event.ProgramID.String()),
		interfaces.String("slug", event.Slug))
	return nil
}

// Remove deletes the program document.
func (i *ProgramIndexer) Remove(ctx context.Context, programID uuid.UUID) error {
	if err := i.engine.Delete(ctx, constants.ProgramsIndex, []string{programID.String()}); err != nil {
		return fmt.Errorf("remove program %s: %w", programID, err)
	}
	i.logger.Debug("Removed program from index", interfaces.String("program_id", programID.String()))
	return nil
}

// programFields maps event detail keys to programs index fields.
var programFields = map[string]string{
	"programId":   "id",
	"slug":        "slug",
	"title":       "title",
	"description": "description",
	"programType": "type",
	"language":    "language",
	"publishedAt": "published_at",
}

// ProgramDocument maps the event payload to the programs index schema.
func ProgramDocument(event *domain.ProgramPublished) interfaces.Document {
	return documentFrom(event.Details(), programFields)
}

// documentFrom renames the detail keys listed in fields. Keys the event does
// not carry are left out of the document.
func documentFrom(details map[string]interface{}, fields map[string]string) interfaces.Document {
	doc := make(interfaces.Document, len(fields))
	for from, to := range fields {
		if value, ok := details[from]; ok {
			doc[to] = value
		}
	}
	return doc
}
