package logger

import (
	"context"
	"testing"

	"github.com/bizmaster/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	t.Run("creates console logger", func(t *testing.T) {
		l := New(config.LogConfig{Level: "debug", Format: "console", Output: "stdout"})

		require.NotNil(t, l)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("creates json logger", func(t *testing.T) {
		l := New(config.LogConfig{Level: "warn", Format: "json", Output: "stderr"})

		require.NotNil(t, l)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level defaults to info", func(t *testing.T) {
		l := New(config.LogConfig{Level: "chatty", Format: "json", Output: "stdout"})

		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})
}

func TestContext(t *testing.T) {
	t.Run("round-trips the logger", func(t *testing.T) {
		l := zap.NewNop()
		ctx := WithContext(context.Background(), l)

		assert.Same(t, l, FromContext(ctx))
	})

	t.Run("missing logger yields a no-op", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("request id round-trip", func(t *testing.T) {
		ctx, enriched := WithRequestID(context.Background(), zap.NewNop(), "req-1")

		assert.NotNil(t, enriched)
		assert.Equal(t, "req-1", GetRequestID(ctx))
	})
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
