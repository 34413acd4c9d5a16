package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Routing keys of the catalog events.
const (
	EventTypeProgramPublished = "ProgramPublished"
	EventTypeProgramArchived  = "ProgramArchived"
	EventTypeEpisodePublished = "EpisodePublished"
	EventTypeEpisodeHidden    = "EpisodeHidden"
)

// Event is the closed set of events raised by catalog entities.
type Event interface {
	interfaces.Event
	catalogEvent()
}

// ProgramPublished is raised when a program enters the published state.
type ProgramPublished struct {
	events.Base
	ProgramID   uuid.UUID
	Slug        string
	Title       string
	Description *string
	ProgramType ProgramType
	Language    string
	PublishedAt time.Time
}

func (*ProgramPublished) EventType() string { return EventTypeProgramPublished }
func (*ProgramPublished) catalogEvent()     {}

// Details returns the flat payload of the event.
func (e *ProgramPublished) Details() map[string]interface{} {
	return map[string]interface{}{
		"programId":   e.ProgramID.String(),
		"slug":        e.Slug,
		"title":       e.Title,
		"description": nullable(e.Description),
		"programType": string(e.ProgramType),
		"language":    e.Language,
		"publishedAt": FormatTimestamp(e.PublishedAt),
	}
}

// ProgramArchived is raised when a program is archived.
type ProgramArchived struct {
	events.Base
	ProgramID uuid.UUID
}

func (*ProgramArchived) EventType() string { return EventTypeProgramArchived }
func (*ProgramArchived) catalogEvent()     {}

// Details returns the flat payload of the event.
func (e *ProgramArchived) Details() map[string]interface{} {
	return map[string]interface{}{"programId": e.ProgramID.String()}
}

// EpisodePublished is raised when an episode enters the published state.
type EpisodePublished struct {
	events.Base
	EpisodeID   uuid.UUID
	ProgramID   uuid.UUID
	Slug        string
	Title       string
	Description *string
	Kind        EpisodeKind
	PublishedAt time.Time
}

func (*EpisodePublished) EventType() string { return EventTypeEpisodePublished }
func (*EpisodePublished) catalogEvent()     {}

// Details returns the flat payload of the event.
func (e *EpisodePublished) Details() map[string]interface{} {
	return map[string]interface{}{
		"episodeId":   e.EpisodeID.String(),
		"programId":   e.ProgramID.String(),
		"slug":        e.Slug,
		"title":       e.Title,
		"description": nullable(e.Description),
		"kind":        string(e.Kind),
		"publishedAt": FormatTimestamp(e.PublishedAt),
	}
}

// EpisodeHidden is raised when an episode is hidden.
type EpisodeHidden struct {
	events.Base
	EpisodeID uuid.UUID
}

func (*EpisodeHidden) EventType() string { return EventTypeEpisodeHidden }
func (*EpisodeHidden) catalogEvent()     {}

// Details returns the flat payload of the event.
func (e *EpisodeHidden) Details() map[string]interface{} {
	return map[string]interface{}{"episodeId": e.EpisodeID.String()}
}

// FilterEvents returns the events whose type is one of types, in order.
func FilterEvents(pending []Event, types ...string) []Event {
	out := make([]Event, 0, len(pending))
	for _, ev := range pending {
		for _, t := range types {
			if ev.EventType() == t {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}

// ToBusEvents widens catalog events for the event bus.
func ToBusEvents(evs []Event) []interfaces.Event {
	out := make([]interfaces.Event, len(evs))
	for i, ev := range evs {
		out[i] = ev
	}
	return out
}

// FormatTimestamp renders t as an ISO-8601 UTC string with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
