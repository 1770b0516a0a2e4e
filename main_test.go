package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// reorderArgs tests
// ---------------------------------------------------------------------------

func TestReorderArgs_NoArgs(t *testing.T) {
	// No arguments at all: input stays "" and main() runs the
	// demonstration script.
	flags, positional := reorderArgs(nil)
	assert.Nil(t, flags)
	assert.Nil(t, positional)
}

func TestReorderArgs_PositionalOnly(t *testing.T) {
	// A bare path argument becomes positional — triggers the scan flow.
	flags, positional := reorderArgs([]string{"./mypackage"})
	assert.Nil(t, flags)
	assert.Equal(t, []string{"./mypackage"}, positional)
}

func TestReorderArgs_FlagsOnly(t *testing.T) {
	flags, positional := reorderArgs([]string{"-include-unexported", "-format", "mermaid"})
	assert.Equal(t, []string{"-include-unexported", "-format", "mermaid"}, flags)
	assert.Nil(t, positional)
}

func TestReorderArgs_FlagsBeforePositional(t *testing.T) {
	flags, positional := reorderArgs([]string{"-format", "mermaid", "./pkg"})
	assert.Equal(t, []string{"-format", "mermaid"}, flags)
	assert.Equal(t, []string{"./pkg"}, positional)
}

func TestReorderArgs_PositionalBeforeFlags(t *testing.T) {
	// The whole point of reorderArgs: allow positional args before flags.
	flags, positional := reorderArgs([]string{"./pkg", "-format", "mermaid"})
	assert.Equal(t, []string{"-format", "mermaid"}, flags)
	assert.Equal(t, []string{"./pkg"}, positional)
}

func TestReorderArgs_PositionalBetweenFlags(t *testing.T) {
	flags, positional := reorderArgs([]string{"-include-unexported", "./pkg", "-format", "mermaid"})
	assert.Equal(t, []string{"-include-unexported", "-format", "mermaid"}, flags)
	assert.Equal(t, []string{"./pkg"}, positional)
}

func TestReorderArgs_ValueFlagWithEquals(t *testing.T) {
	// When a value flag uses "=" syntax, the value is part of the same arg.
	flags, positional := reorderArgs([]string{"-output=adoption.mmd", "./pkg"})
	assert.Equal(t, []string{"-output=adoption.mmd"}, flags)
	assert.Equal(t, []string{"./pkg"}, positional)
}

func TestReorderArgs_BooleanFlagDoesNotConsumeNextArg(t *testing.T) {
	// -include-unexported is a boolean flag (not in valueFlagSet), so it
	// must NOT consume the following positional argument.
	flags, positional := reorderArgs([]string{"-include-unexported", "./pkg"})
	assert.Equal(t, []string{"-include-unexported"}, flags)
	assert.Equal(t, []string{"./pkg"}, positional)
}

// ---------------------------------------------------------------------------
// parseLogLevel tests
// ---------------------------------------------------------------------------

func TestParseLogLevel_ValidLevels(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"INFO":  slog.LevelInfo,
		"Debug": slog.LevelDebug,
	} {
		got, err := parseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseLogLevel_Invalid(t *testing.T) {
	_, err := parseLogLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
