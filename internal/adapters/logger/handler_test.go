package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xcscheme/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil)
	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("scheme", "App")}).WithGroup("fmt"))

	log.Info("formatted", "files", 2)
	assert.Equal(t, "formatted fmt.scheme=App fmt.files=2\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
