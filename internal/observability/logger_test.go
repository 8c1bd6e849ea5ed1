package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, parseLevel(tc.input), "level %q", tc.input)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = ContextWithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
}

func TestNopLoggerIsSafe(t *testing.T) {
	logger := Nop()
	logger.Info().Str("k", "v").Int("n", 1).Msg("discarded")
	logger.WithSession("s").WithOperation("op").Warn().Msg("also discarded")
}
