package handler

import (
	"fmt"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Subscriber is a handler that declares the event types it consumes.
type Subscriber interface {
	interfaces.EventHandler
	EventTypes() []string
}

// Register subscribes every handler to its declared event types.
func Register(bus interfaces.EventBus, handlers ...Subscriber) error {
	for _, h := range handlers {
		for _, eventType := range h.EventTypes() {
			if err := bus.Subscribe(eventType, h); err != nil {
				return fmt.Errorf("subscribe %s to %s: %w", h.Name(), eventType, err)
			}
		}
	}
	return nil
}
