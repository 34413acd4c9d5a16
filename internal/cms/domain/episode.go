package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// Episode is a single audio or video item belonging to a program.
type Episode struct {
	Entity
	programID   uuid.UUID
	title       string
	slug        string
	description *string
	kind        EpisodeKind
	source      uuid.UUID
	cover       *uuid.UUID
	transcripts []uuid.UUID
	status      EpisodeStatus
	publishedAt *time.Time
}

// NewEpisode validates input and returns a draft episode.
func NewEpisode(input EpisodeCreateInput) (*Episode, error) {
	in := input.normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	return &Episode{
		Entity:      newEntity(newID(in.ID), now()),
		programID:   uuid.MustParse(in.ProgramID),
		title:       in.Title,
		slug:        in.Slug,
		description: cloneString(in.Description),
		kind:        in.Kind,
		source:      uuid.MustParse(in.Source),
		cover:       parseAsset(in.Cover),
		transcripts: parseAssets(in.Transcripts),
		status:      EpisodeStatusDraft,
	}, nil
}

func (e *Episode) ProgramID() uuid.UUID     { return e.programID }
func (e *Episode) Title() string            { return e.title }
func (e *Episode) Slug() string             { return e.slug }
func (e *Episode) Description() *string     { return cloneString(e.description) }
func (e *Episode) Kind() EpisodeKind        { return e.kind }
func (e *Episode) Source() uuid.UUID        { return e.source }
func (e *Episode) Cover() *uuid.UUID        { return cloneUUID(e.cover) }
func (e *Episode) Transcripts() []uuid.UUID { return cloneUUIDs(e.transcripts) }
func (e *Episode) Status() EpisodeStatus    { return e.status }
func (e *Episode) PublishedAt() *time.Time  { return cloneTime(e.publishedAt) }

// Update applies a partial update of the editable fields.
func (e *Episode) Update(input EpisodeUpdateInput) error {
	if input.IsEmpty() {
		return invalid("", "at least one field must be provided")
	}

	var c issueCollector
	c.title(input.Title)
	c.description(input.Description)
	c.asset("cover", input.Cover)
	c.assets("transcripts", input.Transcripts)
	if err := c.err(); err != nil {
		return err
	}

	if input.Title != nil {
		e.title = strings.TrimSpace(*input.Title)
	}
	if input.Description.Set {
		e.description = cloneString(input.Description.Value)
	}
	if input.Cover.Set {
		e.cover = parseAsset(input.Cover.Value)
	}
	if input.Transcripts.Set {
		var ids []string
		if input.Transcripts.Value != nil {
			ids = *input.Transcripts.Value
		}
		e.transcripts = parseAssets(ids)
	}

	e.touch(now())
	return nil
}

// ChangeStatus moves the episode to input.Status and queues the matching event.
// Requesting the current status is a no-op.
func (e *Episode) ChangeStatus(input EpisodeChangeStatusInput) error {
	target := input.Status
	if !target.IsValid() {
		return invalid("status", "must be one of draft, published, hidden")
	}
	if target == e.status {
		return nil
	}
	if target == EpisodeStatusDraft {
		return invalid("status", "status cannot be draft again after publish or hidden")
	}
	if !e.status.CanTransitionTo(target) {
		return invalid("status", fmt.Sprintf("cannot change status from %s to %s", e.status, target))
	}
	strategy, ok := EpisodeStrategyFor(target)
	if !ok {
		return apperrors.Internal(fmt.Sprintf("no strategy registered for episode status %s", target))
	}

	at := now()
	change := EpisodeStatusChange{
		Episode:              e.Snapshot(),
		RequestedPublishedAt: cloneTime(input.PublishedAt),
		At:                   at,
	}

	e.status = target
	e.touch(at)
	strategy.Apply(change, e.addDomainEvent, func(t time.Time) {
		e.publishedAt = &t
	})

	return nil
}

// MoveToProgram reassigns the episode to another program under slug.
// Slug uniqueness in the target program is checked by the caller.
func (e *Episode) MoveToProgram(input EpisodeMoveInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}

	e.programID = uuid.MustParse(input.ProgramID)
	e.slug = input.Slug
	e.touch(now())
	return nil
}

// Snapshot returns the fields strategies and indexers need.
func (e *Episode) Snapshot() EpisodeSnapshot {
	return EpisodeSnapshot{
		ID:          e.ID(),
		ProgramID:   e.programID,
		Slug:        e.slug,
		Title:       e.title,
		Description: cloneString(e.description),
		Kind:        e.kind,
		PublishedAt: cloneTime(e.publishedAt),
	}
}

// Clone returns an independent copy, pending events included.
func (e *Episode) Clone() *Episode {
	c := e.copyFields()
	c.Entity = e.Entity.clone(true)
	return c
}

// CloneWithoutEvents returns an independent copy with an empty event queue.
func (e *Episode) CloneWithoutEvents() *Episode {
	c := e.copyFields()
	c.Entity = e.Entity.clone(false)
	return c
}

func (e *Episode) copyFields() *Episode {
	return &Episode{
		programID:   e.programID,
		title:       e.title,
		slug:        e.slug,
		description: cloneString(e.description),
		kind:        e.kind,
		source:      e.source,
		cover:       cloneUUID(e.cover),
		transcripts: cloneUUIDs(e.transcripts),
		status:      e.status,
		publishedAt: cloneTime(e.publishedAt),
	}
}
