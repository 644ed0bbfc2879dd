package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("chatty")
	require.Error(t, err)
}

func TestNewWritesPlainTextToBuffers(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Info("detail shown", "country", "china")
	New(&buf, slog.LevelInfo).Debug("hidden")

	out := buf.String()
	require.Contains(t, out, "detail shown")
	require.Contains(t, out, "country=china")
	require.NotContains(t, out, "hidden")
	require.NotContains(t, out, "\x1b[", "no ANSI colour outside a terminal")
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	logger, closeFn, err := Open(path, "warn")
	require.NoError(t, err)
	logger.Warn("history write failed")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "history write failed")
}

func TestOpenWithoutPathDiscards(t *testing.T) {
	logger, closeFn, err := Open("", "info")
	require.NoError(t, err)
	logger.Info("ignored")
	require.NoError(t, closeFn())
}
