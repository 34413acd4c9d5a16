package handler_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/internal/cms/handler"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

type mockProgramProjector struct {
	mock.Mock
}

func (m *mockProgramProjector) Index(ctx context.Context, event *domain.ProgramPublished) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockProgramProjector) Remove(ctx context.Context, programID uuid.UUID) error {
	return m.Called(ctx, programID).Error(0)
}

type mockEpisodeProjector struct {
	mock.Mock
}

func (m *mockEpisodeProjector) Index(ctx context.Context, event *domain.EpisodePublished) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEpisodeProjector) Remove(ctx context.Context, episodeID uuid.UUID) error {
	return m.Called(ctx, episodeID).Error(0)
}

type strayEvent struct {
	events.Base
}

func (strayEvent) EventType() string               { return "ProgramRenamed" }
func (strayEvent) Details() map[string]interface{} { return map[string]interface{}{} }

func TestProgramHandlerRoutesByType(t *testing.T) {
	ctx := context.Background()
	projector := new(mockProgramProjector)
	h := handler.NewProgramStatusEventHandler(projector, logger.NewTestLogger(t))
	programID := uuid.New()
	published := &domain.ProgramPublished{Base: events.NewBase(programID.String(), time.Now()), ProgramID: programID}
	archived := &domain.ProgramArchived{Base: events.NewBase(programID.String(), time.Now()), ProgramID: programID}
	projector.On("Index", ctx, published).Return(nil).Once()
	projector.On("Remove", ctx, programID).Return(nil).Once()

	require.NoError(t, h.Handle(ctx, published))
	require.NoError(t, h.Handle(ctx, archived))

	projector.AssertExpectations(t)
}

func TestProgramHandlerPropagatesProjectorError(t *testing.T) {
	ctx := context.Background()
	projector := new(mockProgramProjector)
	h := handler.NewProgramStatusEventHandler(projector, logger.NewNoopLogger())
	programID := uuid.New()
	boom := stderrors.New("index unavailable")
	projector.On("Remove", ctx, programID).Return(boom)

	err := h.Handle(ctx, &domain.ProgramArchived{Base: events.NewBase(programID.String(), time.Now()), ProgramID: programID})

	assert.ErrorIs(t, err, boom)
}

func TestProgramHandlerIgnoresUnknownType(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	projector := new(mockProgramProjector)
	h := handler.NewProgramStatusEventHandler(projector, logger.NewFromZap(zap.New(core)))

	err := h.Handle(context.Background(), strayEvent{Base: events.NewBase("x", time.Now())})

	require.NoError(t, err)
	projector.AssertNotCalled(t, "Index", mock.Anything, mock.Anything)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ProgramRenamed", logs.All()[0].ContextMap()["event_type"])
}

func TestEpisodeHandlerRoutesByType(t *testing.T) {
	ctx := context.Background()
	projector := new(mockEpisodeProjector)
	h := handler.NewEpisodeStatusEventHandler(projector, logger.NewTestLogger(t))
	episodeID := uuid.New()
	published := &domain.EpisodePublished{Base: events.NewBase(episodeID.String(), time.Now()), EpisodeID: episodeID}
	hidden := &domain.EpisodeHidden{Base: events.NewBase(episodeID.String(), time.Now()), EpisodeID: episodeID}
	projector.On("Index", ctx, published).Return(nil).Once()
	projector.On("Remove", ctx, episodeID).Return(nil).Once()

	require.NoError(t, h.Handle(ctx, published))
	require.NoError(t, h.Handle(ctx, hidden))

	projector.AssertExpectations(t)
	assert.Equal(t, "episode-status-indexer", h.Name())
}

func TestRegisterSubscribesDeclaredTypes(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoopLogger())
	programs := handler.NewProgramStatusEventHandler(new(mockProgramProjector), logger.NewNoopLogger())
	episodes := handler.NewEpisodeStatusEventHandler(new(mockEpisodeProjector), logger.NewNoopLogger())

	require.NoError(t, handler.Register(bus, programs, episodes))
	// registering twice keeps a single subscription per type
	require.NoError(t, handler.Register(bus, programs, episodes))

	for _, eventType := range []string{
		domain.EventTypeProgramPublished,
		domain.EventTypeProgramArchived,
		domain.EventTypeEpisodePublished,
		domain.EventTypeEpisodeHidden,
	} {
		assert.Equal(t, 1, bus.HandlerCount(eventType), eventType)
	}
}
