package interfaces

import (
	"context"
	"time"
)

// Event represents a domain event.
type Event interface {
	// EventID returns the unique identifier assigned when the event was raised
	EventID() string

	// EventType returns the routing key of the event
	EventType() string

	// OccurredOn returns when the event was raised
	OccurredOn() time.Time

	// AggregateID returns the ID of the aggregate that produced the event
	AggregateID() string

	// Details returns a flat snapshot of the event payload
	Details() map[string]interface{}
}

// EventHandler handles events routed to it by an EventBus.
type EventHandler interface {
	// Handle processes an event
	Handle(ctx context.Context, event Event) error

	// Name identifies the handler in logs
	Name() string
}

// EventBus provides pub/sub functionality for domain events.
type EventBus interface {
	// Publish delivers an event to every subscriber of its type
	Publish(ctx context.Context, event Event) error

	// PublishAll publishes events one at a time, in order
	PublishAll(ctx context.Context, events []Event) error

	// PublishAsync publishes an event in the background
	PublishAsync(ctx context.Context, event Event)

	// Subscribe registers a handler for a specific event type
	Subscribe(eventType string, handler EventHandler) error

	// Unsubscribe removes a handler for a specific event type
	Unsubscribe(eventType string, handler EventHandler) error

	// Start starts the event bus
	Start(ctx context.Context) error

	// Stop stops the event bus
	Stop() error
}
