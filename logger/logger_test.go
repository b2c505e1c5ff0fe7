package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, Level(""))
	require.Equal(t, zerolog.DebugLevel, Level("debug"))
	require.Equal(t, zerolog.WarnLevel, Level("WARN"))
	require.Equal(t, zerolog.InfoLevel, Level("loud"), "Unknown levels should fall back to info")
}

func TestInitWithOutput(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("NO_COLOR", "1")
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	InitWithOutput(&buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "logger_test.go")
}
