package events

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the envelope every event shares. Embed it in concrete events.
type Base struct {
	id          string
	occurredOn  time.Time
	aggregateID string
}

// NewBase stamps a fresh event id and occurrence time.
func NewBase(aggregateID string, occurredOn time.Time) Base {
	return Base{
		id:          uuid.NewString(),
		occurredOn:  occurredOn,
		aggregateID: aggregateID,
	}
}

// EventID returns the unique identifier of the event
func (b Base) EventID() string {
	return b.id
}

// OccurredOn returns when the event was raised
func (b Base) OccurredOn() time.Time {
	return b.occurredOn
}

// AggregateID returns the ID of the aggregate that produced the event
func (b Base) AggregateID() string {
	return b.aggregateID
}
