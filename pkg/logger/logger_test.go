package logger_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	log.WithFields(interfaces.String("component", "bus")).
		Error("handler failed", interfaces.Error(stderrors.New("boom")), interfaces.Int("attempt", 1))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "handler failed", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "bus", fields["component"])
	assert.Equal(t, "boom", fields["error"])
	assert.EqualValues(t, 1, fields["attempt"])
}

func TestWithContextRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewFromZap(zap.New(core))

	ctx := logger.WithRequestID(context.Background(), "req-42")
	log.WithContext(ctx).Info("program created")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}

func TestFromContext(t *testing.T) {
	assert.IsType(t, logger.NoopLogger{}, logger.FromContext(context.Background()))

	log := logger.NewTestLogger(t)
	ctx := logger.WithContext(context.Background(), log)
	assert.Same(t, log, logger.FromContext(ctx))
}

func TestBuild(t *testing.T) {
	t.Run("production preset", func(t *testing.T) {
		log, err := logger.Build(logger.Options{OutputPath: "stderr", Fields: map[string]interface{}{"service": "catalog"}})
		require.NoError(t, err)
		assert.True(t, log.Zap().Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Zap().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("development preset logs debug", func(t *testing.T) {
		log, err := logger.Build(logger.Options{Development: true, OutputPath: "stderr"})
		require.NoError(t, err)
		assert.True(t, log.Zap().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("level overrides preset", func(t *testing.T) {
		log, err := logger.Build(logger.Options{Development: true, Level: "warn", OutputPath: "stderr"})
		require.NoError(t, err)
		assert.False(t, log.Zap().Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Zap().Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		_, err := logger.Build(logger.Options{Level: "not-a-level"})
		assert.Error(t, err)
	})
}
