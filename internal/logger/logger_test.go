package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hanaburkart/portfolio/internal/config"
	"github.com/hanaburkart/portfolio/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in, slog.LevelWarn))
		})
	}
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	l := logger.SetupLogger(&config.Config{Env: config.EnvProduction, LogLevel: "error"})
	assert.False(t, l.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, l.Enabled(t.Context(), slog.LevelError))

	l = logger.SetupLogger(&config.Config{Env: "development"})
	assert.True(t, l.Enabled(t.Context(), slog.LevelDebug))
}

func TestSetupCLILogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := logger.SetupCLILogger(&buf, "info")
	l.Debug("hidden")
	l.Info("theme applied", "mode", "dark")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "mode=dark")
}
