package indexer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/constants"
	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// EpisodeIndexer projects episode events into the episodes index.
type EpisodeIndexer struct {
	engine interfaces.SearchEngine
	logger interfaces.Logger
}

// NewEpisodeIndexer creates a new episode indexer
func NewEpisodeIndexer(engine interfaces.SearchEngine, logger interfaces.Logger) *EpisodeIndexer {
	return &EpisodeIndexer{engine: engine, logger: logger}
}

// Index writes the published episode as a search document.
func (i *EpisodeIndexer) Index(ctx context.Context, event *domain.EpisodePublished) error {
	if err := i.engine.Index(ctx, constants.EpisodesIndex, EpisodeDocument(event)); err != nil {
		return fmt.Errorf("index episode %s: %w", event.EpisodeID, err)
	}
	i.logger.Debug("Indexed episode",
		interfaces.String("episode_id", event.EpisodeID.String()),
		interfaces.String("program_id", event.ProgramID.String()))
	return nil
}

// Remove deletes the episode document.
func (i *EpisodeIndexer) Remove(ctx context.Context, episodeID uuid.UUID) error {
	if err := i.engine.Delete(ctx, constants.EpisodesIndex, []string{episodeID.String()}); err != nil {
		return fmt.Errorf("remove episode %s: %w", episodeID, err)
	}
	i.logger.Debug("Removed episode from index", interfaces.String("episode_id", episodeID.String()))
	return nil
}

var episodeFields = map[string]string{
	"episodeId":   "id",
	"programId":   "program_id",
	"slug":        "slug",
	"title":       "title",
	"description": "description",
	"kind":        "kind",
	"publishedAt": "published_at",
}

// EpisodeDocument maps the event payload to the episodes index schema.
func EpisodeDocument(event *domain.EpisodePublished) interfaces.Document {
	return documentFrom(event.Details(), episodeFields)
}
