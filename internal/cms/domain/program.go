package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// Program is a show that groups episodes.
type Program struct {
	Entity
	title       string
	programType ProgramType
	slug        string
	status      ProgramStatus
	description *string
	cover       *uuid.UUID
	language    string
	publishedAt *time.Time
}

// NewProgram validates input and returns a draft program.
func NewProgram(input ProgramCreateInput) (*Program, error) {
	in := input.normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	return &Program{
		Entity:      newEntity(newID(in.ID), now()),
		title:       in.Title,
		programType: in.Type,
		slug:        in.Slug,
		status:      ProgramStatusDraft,
		description: cloneString(in.Description),
		cover:       parseAsset(in.Cover),
		language:    in.Language,
	}, nil
}

func (p *Program) Title() string           { return p.title }
func (p *Program) Type() ProgramType       { return p.programType }
func (p *Program) Slug() string            { return p.slug }
func (p *Program) Status() ProgramStatus   { return p.status }
func (p *Program) Description() *string    { return cloneString(p.description) }
func (p *Program) Cover() *uuid.UUID       { return cloneUUID(p.cover) }
func (p *Program) Language() string        { return p.language }
func (p *Program) PublishedAt() *time.Time { return cloneTime(p.publishedAt) }
func (p *Program) IsPublished() bool       { return p.status == ProgramStatusPublished }

// Update applies a partial update. Slug and status are not editable here.
func (p *Program) Update(input ProgramUpdateInput) error {
	if input.IsEmpty() {
		return invalid("", "at least one field must be provided")
	}

	var c issueCollector
	c.title(input.Title)
	if input.Type != nil && !input.Type.IsValid() {
		c.add("type", "must be one of podcast, documentary, youtube, series")
	}
	c.description(input.Description)
	c.asset("cover", input.Cover)
	if input.Language != nil {
		c.check("language", *input.Language, languageRule)
	}
	if err := c.err(); err != nil {
		return err
	}

	if input.Title != nil {
		p.title = strings.TrimSpace(*input.Title)
	}
	if input.Type != nil {
		p.programType = *input.Type
	}
	if input.Description.Set {
		p.description = cloneString(input.Description.Value)
	}
	if input.Cover.Set {
		p.cover = parseAsset(input.Cover.Value)
	}
	if input.Language != nil {
		p.language = *input.Language
	}

	p.touch(now())
	return nil
}

// ChangeStatus moves the program to input.Status and queues the matching event.
// Requesting the current status is a no-op.
func (p *Program) ChangeStatus(input ProgramChangeStatusInput) error {
	target := input.Status
	if !target.IsValid() {
		return invalid("status", "must be one of draft, published, archived")
	}
	if target == p.status {
		return nil
	}
	if !p.status.CanTransitionTo(target) {
		return invalid("status", fmt.Sprintf("cannot change status from %s to %s", p.status, target))
	}
	strategy, ok := ProgramStrategyFor(target)
	if !ok {
		return apperrors.Internal(fmt.Sprintf("no strategy registered for program status %s", target))
	}

	at := now()
	change := ProgramStatusChange{
		Program:              p.Snapshot(),
		RequestedPublishedAt: cloneTime(input.PublishedAt),
		At:                   at,
	}

	p.status = target
	p.touch(at)
	strategy.Apply(change, p.addDomainEvent, func(t time.Time) {
		p.publishedAt = &t
	})

	return nil
}

// Snapshot returns the fields strategies and indexers need.
func (p *Program) Snapshot() ProgramSnapshot {
	return ProgramSnapshot{
		ID:          p.ID(),
		Slug:        p.slug,
		Title:       p.title,
		Description: cloneString(p.description),
		Type:        p.programType,
		Language:    p.language,
		PublishedAt: cloneTime(p.publishedAt),
	}
}

// Clone returns an independent copy, pending events included.
func (p *Program) Clone() *Program {
	c := p.copyFields()
	c.Entity = p.Entity.clone(true)
	return c
}

// CloneWithoutEvents returns an independent copy with an empty event queue.
func (p *Program) CloneWithoutEvents() *Program {
	c := p.copyFields()
	c.Entity = p.Entity.clone(false)
	return c
}

func (p *Program) copyFields() *Program {
	return &Program{
		title:       p.title,
		programType: p.programType,
		slug:        p.slug,
		status:      p.status,
		description: cloneString(p.description),
		cover:       cloneUUID(p.cover),
		language:    p.language,
		publishedAt: cloneTime(p.publishedAt),
	}
}
