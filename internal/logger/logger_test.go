package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	got := redact([]any{"api_key", "sk-123", "model", "gpt-4o-mini", "input_tokens", 12, "auth_token", "abc", "dangling"})
	want := []any{"api_key", "[REDACTED]", "model", "gpt-4o-mini", "input_tokens", 12, "auth_token", "[REDACTED]", "dangling"}
	assert.Equal(t, want, got)
}

func TestParseLevel(t *testing.T) {
	for _, in := range []string{"", "info", "DEBUG", "warn", "warning", "error"} {
		_, err := parseLevel(in)
		assert.NoError(t, err, in)
	}
	_, err := parseLevel("chatty")
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "naevis.log")

	log, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)

	log.Info("question generated", "topic", "Math", "openai_api_key", "sk-secret")
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, "question generated"))
	assert.True(t, strings.Contains(out, `"topic":"Math"`))
	assert.False(t, strings.Contains(out, "sk-secret"))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.With("k", "v").Error("discarded")
}
