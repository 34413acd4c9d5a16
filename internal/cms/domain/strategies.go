package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/pkg/events"
)

// ProgramSnapshot is the read-only view of a program handed to status strategies.
type ProgramSnapshot struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Description *string
	Type        ProgramType
	Language    string
	PublishedAt *time.Time
}

// ProgramStatusChange describes one accepted program transition.
type ProgramStatusChange struct {
	Program              ProgramSnapshot
	RequestedPublishedAt *time.Time
	At                   time.Time
}

// ProgramStatusStrategy applies the side effects of entering a program status.
type ProgramStatusStrategy interface {
	Apply(change ProgramStatusChange, emit func(Event), setPublishedAt func(time.Time))
}

type publishProgramStrategy struct{}

func (publishProgramStrategy) Apply(change ProgramStatusChange, emit func(Event), setPublishedAt func(time.Time)) {
	publishedAt := effectivePublishedAt(change.Program.PublishedAt, change.RequestedPublishedAt, change.At, setPublishedAt)
	p := change.Program
	emit(&ProgramPublished{
		Base:        events.NewBase(p.ID.String(), change.At),
		ProgramID:   p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: cloneString(p.Description),
		ProgramType: p.Type,
		Language:    p.Language,
		PublishedAt: publishedAt,
	})
}

type archiveProgramStrategy struct{}

func (archiveProgramStrategy) Apply(change ProgramStatusChange, emit func(Event), _ func(time.Time)) {
	emit(&ProgramArchived{
		Base:      events.NewBase(change.Program.ID.String(), change.At),
		ProgramID: change.Program.ID,
	})
}

var programStatusStrategies = map[ProgramStatus]ProgramStatusStrategy{
	ProgramStatusPublished: publishProgramStrategy{},
	ProgramStatusArchived:  archiveProgramStrategy{},
}

// ProgramStrategyFor returns the strategy registered for entering status.
func ProgramStrategyFor(status ProgramStatus) (ProgramStatusStrategy, bool) {
	s, ok := programStatusStrategies[status]
	return s, ok
}

// EpisodeSnapshot is the read-only view of an episode handed to status strategies.
type EpisodeSnapshot struct {
	ID          uuid.UUID
	ProgramID   uuid.UUID
	Slug        string
	Title       string
	Description *string
	Kind        EpisodeKind
	PublishedAt *time.Time
}

// EpisodeStatusChange describes one accepted episode transition.
type EpisodeStatusChange struct {
	Episode              EpisodeSnapshot
	RequestedPublishedAt *time.Time
	At                   time.Time
}

// EpisodeStatusStrategy applies the side effects of entering an episode status.
type EpisodeStatusStrategy interface {
	Apply(change EpisodeStatusChange, emit func(Event), setPublishedAt func(time.Time))
}

type publishEpisodeStrategy struct{}

func (publishEpisodeStrategy) Apply(change EpisodeStatusChange, emit func(Event), setPublishedAt func(time.Time)) {
	publishedAt := effectivePublishedAt(change.Episode.PublishedAt, change.RequestedPublishedAt, change.At, setPublishedAt)
	e := change.Episode
	emit(&EpisodePublished{
		Base:        events.NewBase(e.ID.String(), change.At),
		EpisodeID:   e.ID,
		ProgramID:   e.ProgramID,
		Slug:        e.Slug,
		Title:       e.Title,
		Description: cloneString(e.Description),
		Kind:        e.Kind,
		PublishedAt: publishedAt,
	})
}

type hideEpisodeStrategy struct{}

func (hideEpisodeStrategy) Apply(change EpisodeStatusChange, emit func(Event), _ func(time.Time)) {
	emit(&EpisodeHidden{
		Base:      events.NewBase(change.Episode.ID.String(), change.At),
		EpisodeID: change.Episode.ID,
	})
}

var episodeStatusStrategies = map[EpisodeStatus]EpisodeStatusStrategy{
	EpisodeStatusPublished: publishEpisodeStrategy{},
	EpisodeStatusHidden:    hideEpisodeStrategy{},
}

// EpisodeStrategyFor returns the strategy registered for entering status.
func EpisodeStrategyFor(status EpisodeStatus) (EpisodeStatusStrategy, bool) {
	s, ok := episodeStatusStrategies[status]
	return s, ok
}

// effectivePublishedAt keeps an existing publish time; otherwise it records requested or at.
func effectivePublishedAt(current, requested *time.Time, at time.Time, set func(time.Time)) time.Time {
	if current != nil {
		return *current
	}
	publishedAt := at
	if requested != nil {
		publishedAt = requested.UTC()
	}
	set(publishedAt)
	return publishedAt
}
