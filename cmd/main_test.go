package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	tests := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{env: envLocal, enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
		{env: envDev, enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{env: envProd, enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{env: "staging", enabled: slog.LevelError, muted: slog.LevelWarn},
	}

	for _, tt := range tests {
		log := setupLogger(tt.env)
		assert.True(t, log.Enabled(ctx, tt.enabled), tt.env)
		assert.False(t, log.Enabled(ctx, tt.muted), tt.env)
	}
}

func TestDropTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, dropTime(nil, slog.String(slog.TimeKey, "now")))
	assert.Equal(t, slog.String("msg", "hi"), dropTime(nil, slog.String("msg", "hi")))
}

func TestWriteMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "Test counter."})
	reg.MustRegister(counter)
	counter.Inc()

	path := filepath.Join(t.TempDir(), "atlas_indoor.prom")
	writeMetrics(t.Context(), slog.Default(), reg, path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "test_total 1")
}
