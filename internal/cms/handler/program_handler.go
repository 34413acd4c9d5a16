package handler

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// ProgramProjector is the indexing side of program events.
type ProgramProjector interface {
	Index(ctx context.Context, event *domain.ProgramPublished) error
	Remove(ctx context.Context, programID uuid.UUID) error
}

type programRoute func(ctx context.Context, p ProgramProjector, event interfaces.Event) error

var programRoutes = map[string]programRoute{
	domain.EventTypeProgramPublished: func(ctx context.Context, p ProgramProjector, event interfaces.Event) error {
		e, ok := event.(*domain.ProgramPublished)
		if !ok {
			return unexpectedPayload(event)
		}
		return p.Index(ctx, e)
	},
	domain.EventTypeProgramArchived: func(ctx context.Context, p ProgramProjector, event interfaces.Event) error {
		e, ok := event.(*domain.ProgramArchived)
		if !ok {
			return unexpectedPayload(event)
		}
		return p.Remove(ctx, e.ProgramID)
	},
}

// ProgramStatusEventHandler keeps the programs index in step with program status changes.
type ProgramStatusEventHandler struct {
	projector ProgramProjector
	logger    interfaces.Logger
}

// NewProgramStatusEventHandler creates a new handler
func NewProgramStatusEventHandler(projector ProgramProjector, logger interfaces.Logger) *ProgramStatusEventHandler {
	return &ProgramStatusEventHandler{projector: projector, logger: logger}
}

// Handle routes the event to the projector.
func (h *ProgramStatusEventHandler) Handle(ctx context.Context, event interfaces.Event) error {
	route, ok := programRoutes[event.EventType()]
	if !ok {
		h.logger.Warn("Unhandled program event type",
			interfaces.String("event_type", event.EventType()),
			interfaces.String("event_id", event.EventID()))
		return nil
	}
	return route(ctx, h.projector, event)
}

// Name identifies the handler in logs.
func (h *ProgramStatusEventHandler) Name() string {
	return "program-status-indexer"
}

// EventTypes returns the event types this handler processes
func (h *ProgramStatusEventHandler) EventTypes() []string {
	return []string{domain.EventTypeProgramPublished, domain.EventTypeProgramArchived}
}

func unexpectedPayload(event interfaces.Event) error {
	return fmt.Errorf("unexpected payload %T for event type %s", event, event.EventType())
}
