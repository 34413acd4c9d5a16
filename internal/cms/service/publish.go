package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

type eventSource interface {
	DomainEvents() []domain.Event
	RemoveEvents(events ...domain.Event)
}

// publishOwned publishes the pending events of the given types in order and
// drops exactly those from the source. Other pending events stay queued.
func publishOwned(ctx context.Context, bus interfaces.EventBus, source eventSource, types ...string) error {
	owned := domain.FilterEvents(source.DomainEvents(), types...)
	if len(owned) == 0 {
		return nil
	}
	if err := bus.PublishAll(ctx, domain.ToBusEvents(owned)); err != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to publish domain events", err)
	}
	source.RemoveEvents(owned...)
	return nil
}
