package events

import (
	"context"
	"fmt"
	"reflect"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// HandlerError records a failed or panicking handler invocation.
type HandlerError struct {
	EventType string
	EventID   string
	Handler   string
	Err       error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %s failed on %s (%s): %v", e.Handler, e.EventType, e.EventID, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Option configures an InMemoryEventBus.
type Option func(*InMemoryEventBus)

// WithMaxConcurrency bounds the handlers run in parallel for one event. Zero means unbounded.
func WithMaxConcurrency(n int) Option {
	return func(eb *InMemoryEventBus) {
		eb.maxConcurrency = n
	}
}

// WithErrorObserver registers a callback invoked for every isolated handler failure.
func WithErrorObserver(fn func(*HandlerError)) Option {
	return func(eb *InMemoryEventBus) {
		eb.onError = fn
	}
}

// InMemoryEventBus is a process-local EventBus. Handler failures never reach the publisher.
type InMemoryEventBus struct {
	handlers       map[string][]interfaces.EventHandler
	mu             sync.RWMutex
	logger         interfaces.Logger
	maxConcurrency int
	onError        func(*HandlerError)
	wg             sync.WaitGroup
	ctx            context.Context
	cancel         context.CancelFunc
}

var _ interfaces.EventBus = (*InMemoryEventBus)(nil)

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger interfaces.Logger, opts ...Option) *InMemoryEventBus {
	ctx, cancel := context.WithCancel(context.Background())
	eb := &InMemoryEventBus{
		handlers: make(map[string][]interfaces.EventHandler),
		logger:   logger.WithFields(interfaces.String("component", "event_bus")),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(eb)
	}
	return eb
}

// Publish fans the event out to every handler subscribed to its type and waits for all of them.
func (eb *InMemoryEventBus) Publish(ctx context.Context, event interfaces.Event) error {
	if event == nil {
		return errors.BadRequest("cannot publish a nil event")
	}

	handlers := eb.handlersFor(event.EventType())
	if len(handlers) == 0 {
		eb.logger.Debug("No handlers for event",
			interfaces.String("event_type", event.EventType()),
			interfaces.String("event_id", event.EventID()))
		return nil
	}

	var g errgroup.Group
	if eb.maxConcurrency > 0 {
		g.SetLimit(eb.maxConcurrency)
	}
	for _, handler := range handlers {
		handler := handler
		g.Go(func() error {
			eb.dispatch(ctx, handler, event)
			return nil
		})
	}
	_ = g.Wait()

	return nil
}

// PublishAll publishes events in order, waiting for each to settle before the next.
func (eb *InMemoryEventBus) PublishAll(ctx context.Context, events []interfaces.Event) error {
	for _, event := range events {
		if err := eb.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// PublishAsync publishes an event asynchronously. Events published after Stop are dropped.
func (eb *InMemoryEventBus) PublishAsync(ctx context.Context, event interfaces.Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.ctx.Err() != nil {
		eb.logger.Warn("Event bus stopped, dropping async event",
			interfaces.String("event_type", event.EventType()),
			interfaces.String("event_id", event.EventID()))
		return
	}

	eb.wg.Add(1)
	go func() {
		defer eb.wg.Done()
		if err := eb.Publish(ctx, event); err != nil {
			eb.logger.Error("Async event publish failed", interfaces.Error(err))
		}
	}()
}

// Subscribe registers a handler for a specific event type. Subscribing the same handler twice is a no-op.
func (eb *InMemoryEventBus) Subscribe(eventType string, handler interfaces.EventHandler) error {
	if eventType == "" {
		return errors.BadRequest("event type is required")
	}
	if handler == nil {
		return errors.BadRequest("handler is required")
	}
	if !reflect.TypeOf(handler).Comparable() {
		return errors.BadRequest(fmt.Sprintf("handler %s is not comparable", handler.Name()))
	}

	eb.mu.Lock()
	defer eb.mu.Unlock()

	for _, h := range eb.handlers[eventType] {
		if h == handler {
			return nil
		}
	}
	eb.handlers[eventType] = append(eb.handlers[eventType], handler)

	eb.logger.Debug("Event handler subscribed",
		interfaces.String("event_type", eventType),
		interfaces.String("handler", handler.Name()))

	return nil
}

// Unsubscribe removes a handler. The event type is dropped once its last handler is gone.
func (eb *InMemoryEventBus) Unsubscribe(eventType string, handler interfaces.EventHandler) error {
	if handler == nil || !reflect.TypeOf(handler).Comparable() {
		return nil
	}

	eb.mu.Lock()
	defer eb.mu.Unlock()

	handlers := eb.handlers[eventType]
	for i, h := range handlers {
		if h != handler {
			continue
		}
		remaining := make([]interfaces.EventHandler, 0, len(handlers)-1)
		remaining = append(remaining, handlers[:i]...)
		remaining = append(remaining, handlers[i+1:]...)
		if len(remaining) == 0 {
			delete(eb.handlers, eventType)
		} else {
			eb.handlers[eventType] = remaining
		}
		break
	}

	return nil
}

// HandlerCount returns the number of handlers subscribed to eventType.
func (eb *InMemoryEventBus) HandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.handlers[eventType])
}

// EventTypes returns every event type with at least one handler.
func (eb *InMemoryEventBus) EventTypes() []string {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	types := make([]string, 0, len(eb.handlers))
	for t := range eb.handlers {
		types = append(types, t)
	}
	return types
}

// Start starts the event bus
func (eb *InMemoryEventBus) Start(ctx context.Context) error {
	eb.logger.Info("Event bus started", interfaces.Int("max_concurrency", eb.maxConcurrency))
	return nil
}

// Stop rejects further async publishes and waits for in-flight ones.
func (eb *InMemoryEventBus) Stop() error {
	eb.mu.Lock()
	eb.cancel()
	eb.mu.Unlock()
	eb.wg.Wait()
	eb.logger.Info("Event bus stopped")
	return nil
}

// handlersFor snapshots the handler list so dispatch never holds the lock.
func (eb *InMemoryEventBus) handlersFor(eventType string) []interfaces.EventHandler {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	handlers := eb.handlers[eventType]
	if len(handlers) == 0 {
		return nil
	}
	snapshot := make([]interfaces.EventHandler, len(handlers))
	copy(snapshot, handlers)
	return snapshot
}

func (eb *InMemoryEventBus) dispatch(ctx context.Context, handler interfaces.EventHandler, event interfaces.Event) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			eb.report(&HandlerError{
				EventType: event.EventType(),
				EventID:   event.EventID(),
				Handler:   handler.Name(),
				Err:       fmt.Errorf("panic: %v", r),
			}, interfaces.String("stack", string(debug.Stack())))
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		eb.report(&HandlerError{
			EventType: event.EventType(),
			EventID:   event.EventID(),
			Handler:   handler.Name(),
			Err:       err,
		})
		return
	}

	eb.logger.Debug("Event handled",
		interfaces.String("event_type", event.EventType()),
		interfaces.String("handler", handler.Name()),
		interfaces.Duration("took", time.Since(start)))
}

func (eb *InMemoryEventBus) report(herr *HandlerError, extra ...interfaces.Field) {
	fields := append([]interfaces.Field{
		interfaces.String("event_type", herr.EventType),
		interfaces.String("event_id", herr.EventID),
		interfaces.String("handler", herr.Handler),
		interfaces.Error(herr.Err),
	}, extra...)
	eb.logger.Error("Event handler failed", fields...)

	if eb.onError != nil {
		eb.onError(herr)
	}
}
