package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type countingHandler struct {
	seen []string
}

func (h *countingHandler) Handle(_ context.Context, event interfaces.Event) error {
	h.seen = append(h.seen, event.EventType())
	return nil
}

func (h *countingHandler) Name() string { return "counting" }

func TestPublishOwnedKeepsUnownedEvents(t *testing.T) {
	// Arrange
	ctx := context.Background()
	bus := events.NewInMemoryEventBus(logger.NewTestLogger(t))
	h := &countingHandler{}
	require.NoError(t, bus.Subscribe(domain.EventTypeProgramArchived, h))
	require.NoError(t, bus.Subscribe(domain.EventTypeProgramPublished, h))

	program := testutil.CreateTestProgram(t, "morning-news")
	require.NoError(t, program.ChangeStatus(domain.ProgramChangeStatusInput{Status: domain.ProgramStatusPublished}))
	require.NoError(t, program.ChangeStatus(domain.ProgramChangeStatusInput{Status: domain.ProgramStatusArchived}))
	pending := program.DomainEvents()

	// Act
	err := publishOwned(ctx, bus, program, domain.EventTypeProgramArchived)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{domain.EventTypeProgramArchived}, h.seen)
	remaining := program.DomainEvents()
	require.Len(t, remaining, 1)
	assert.Same(t, pending[0], remaining[0])
}

func TestPublishOwnedWithNothingPending(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoopLogger())
	program := testutil.CreateTestProgram(t, "morning-news")

	assert.NoError(t, publishOwned(context.Background(), bus, program, programEventTypes...))
}
