package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"loud":    slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown", "code", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestFileAppendsJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/var", "logs", "msgbox.log")
	for _, outcome := range []string{"OK", "CANCEL"} {
		fl, err := NewFile(fs, path, "debug")
		require.NoError(t, err)
		fl.Debug("message box closed", "outcome", outcome)
		require.NoError(t, fl.Close())
		require.NoError(t, fl.Close())
	}

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "message box closed", rec["msg"])
	assert.Equal(t, "OK", rec["outcome"])
}

func TestNewFileRequiresPath(t *testing.T) {
	_, err := NewFile(afero.NewMemMapFs(), "  ", "info")
	assert.Error(t, err)
}

func TestTee(t *testing.T) {
	var a, b bytes.Buffer
	log := Tee(
		slog.New(slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug})),
		slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError})),
		nil,
	)
	log.With("k", "v").Debug("detail")

	assert.Contains(t, a.String(), "detail")
	assert.Contains(t, a.String(), "k=v")
	assert.Empty(t, b.String())
}

func TestDiscard(t *testing.T) {
	log := Discard()
	require.NotNil(t, log)
	log.Error("dropped", "k", "v")
}
