package log_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/parsync/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  slog.Level
	}{
		"debug":   {input: "debug", want: slog.LevelDebug},
		"trace":   {input: "trace", want: slog.LevelDebug},
		"info":    {input: "info", want: slog.LevelInfo},
		"warn":    {input: "warn", want: slog.LevelWarn},
		"warning": {input: "WARNING", want: slog.LevelWarn},
		"error":   {input: "error", want: slog.LevelError},
		"fatal":   {input: "fatal", want: slog.LevelError},
		"panic":   {input: "panic", want: slog.LevelError},
		"default": {input: "unknown", want: slog.LevelInfo},
		"empty":   {input: "", want: slog.LevelInfo},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, log.GetLevel(tc.input))
		})
	}
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		format string
	}{
		"json":    {format: log.JSONFormat},
		"text":    {format: log.TextFormat},
		"pretty":  {format: log.PrettyFormat},
		"default": {format: "bogus"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := log.CreateHandler("debug", tc.format)
			require.NotNil(t, h)
		})
	}
}
