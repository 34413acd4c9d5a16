package domain

import (
	"time"

	"github.com/google/uuid"
)

// now is the clock used by entities and strategies.
var now = func() time.Time {
	return time.Now().UTC()
}

// Entity holds identity, timestamps and the queue of pending domain events.
type Entity struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt *time.Time
	events    []Event
}

func newEntity(id uuid.UUID, createdAt time.Time) Entity {
	return Entity{id: id, createdAt: createdAt}
}

// ID returns the entity identifier
func (e *Entity) ID() uuid.UUID {
	return e.id
}

// CreatedAt returns when the entity was created
func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns the time of the last mutation, or nil if never mutated
func (e *Entity) UpdatedAt() *time.Time {
	return cloneTime(e.updatedAt)
}

// DomainEvents returns a snapshot of the pending events in the order they were raised.
func (e *Entity) DomainEvents() []Event {
	out := make([]Event, len(e.events))
	copy(out, e.events)
	return out
}

// RemoveEvents drops the given events by identity. Structurally equal events raised separately are kept.
func (e *Entity) RemoveEvents(events ...Event) {
	if len(events) == 0 || len(e.events) == 0 {
		return
	}
	kept := e.events[:0:0]
	for _, pending := range e.events {
		if !containsEvent(events, pending) {
			kept = append(kept, pending)
		}
	}
	e.events = kept
}

// ClearEvents drops every pending event.
func (e *Entity) ClearEvents() {
	e.events = nil
}

func (e *Entity) addDomainEvent(event Event) {
	e.events = append(e.events, event)
}

func (e *Entity) touch(at time.Time) {
	e.updatedAt = &at
}

func (e *Entity) clone(withEvents bool) Entity {
	c := Entity{
		id:        e.id,
		createdAt: e.createdAt,
		updatedAt: cloneTime(e.updatedAt),
	}
	if withEvents && len(e.events) > 0 {
		c.events = make([]Event, len(e.events))
		copy(c.events, e.events)
	}
	return c
}

func containsEvent(events []Event, target Event) bool {
	for _, ev := range events {
		if ev == target {
			return true
		}
	}
	return false
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneUUIDs(ids []uuid.UUID) []uuid.UUID {
	c := make([]uuid.UUID, len(ids))
	copy(c, ids)
	return c
}
