package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// EpisodeProjector is the indexing side of episode events.
type EpisodeProjector interface {
	Index(ctx context.Context, event *domain.EpisodePublished) error
	Remove(ctx context.Context, episodeID uuid.UUID) error
}

type episodeRoute func(ctx context.Context, p EpisodeProjector, event interfaces.Event) error

var episodeRoutes = map[string]episodeRoute{
	domain.EventTypeEpisodePublished: func(ctx context.Context, p EpisodeProjector, event interfaces.Event) error {
		e, ok := event.(*domain.EpisodePublished)
		if !ok {
			return unexpectedPayload(event)
		}
		return p.Index(ctx, e)
	},
	domain.EventTypeEpisodeHidden: func(ctx context.Context, p EpisodeProjector, event interfaces.Event) error {
		e, ok := event.(*domain.EpisodeHidden)
		if !ok {
			return unexpectedPayload(event)
		}
		return p.Remove(ctx, e.EpisodeID)
	},
}

// EpisodeStatusEventHandler keeps the episodes index in step with episode status changes.
type EpisodeStatusEventHandler struct {
	projector EpisodeProjector
	logger    interfaces.Logger
}

// NewEpisodeStatusEventHandler creates a new handler
func NewEpisodeStatusEventHandler(projector EpisodeProjector, logger interfaces.Logger) *EpisodeStatusEventHandler {
	return &EpisodeStatusEventHandler{projector: projector, logger: logger}
}

// Handle routes the event to the projector.
func (h *EpisodeStatusEventHandler) Handle(ctx context.Context, event interfaces.Event) error {
	route, ok := episodeRoutes[event.EventType()]
	if !ok {
		h.logger.Warn("Unhandled episode event type",
			interfaces.String("event_type", event.EventType()),
			interfaces.String("event_id", event.EventID()))
		return nil
	}
	return route(ctx, h.projector, event)
}

func (h *EpisodeStatusEventHandler) Name() string {
	return "episode-status-indexer"
}

// EventTypes returns the event types this handler processes
func (h *EpisodeStatusEventHandler) EventTypes() []string {
	return []string{domain.EventTypeEpisodePublished, domain.EventTypeEpisodeHidden}
}
