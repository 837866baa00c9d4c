package logger_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/kelist/kelist-api/internal/config"
	"github.com/kelist/kelist-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		log, err := logger.Setup(config.ServerConfig{LogLevel: level})
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, log)
	}

	_, err := logger.Setup(config.ServerConfig{LogLevel: "verbose"})
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	// Without an attached logger the process default comes back.
	assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))

	attached := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := logger.WithLogger(context.Background(), attached)
	assert.Same(t, attached, logger.FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.New(slog.NewTextHandler(os.Stderr, nil))

	assert.Same(t, def, logger.FromContextOrDefault(context.Background(), def))
	assert.Equal(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))

	attached := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := logger.WithLogger(context.Background(), attached)
	assert.Same(t, attached, logger.FromContextOrDefault(ctx, def))
}
