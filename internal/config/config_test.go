package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

var envKeys = []string{
	"NAEVIS_CONFIG", "NAEVIS_LLM_PROVIDER", "NAEVIS_LOG_LEVEL", "NAEVIS_LLM_TIMEOUT",
	"NAEVIS_ANTHROPIC_API_KEY", "NAEVIS_OPENAI_API_KEY", "NAEVIS_GEMINI_API_KEY", "NAEVIS_OPENROUTER_API_KEY",
	"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
}

// cleanEnv clears every variable Load reads and points the default
// config path at an empty directory.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 5, cfg.Generation.MaxAttempts)
	assert.True(t, cfg.Commentary.Enabled)
	assert.Len(t, cfg.Topics, len(quiz.DefaultTopics))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Generation.Validators)
}

func TestLoad_File(t *testing.T) {
	cleanEnv(t)
	path := writeFile(t, t.TempDir(), "naevis.yaml", `
llm:
  provider: anthropic
  anthropic:
    api_key: sk-file
    model: claude-sonnet
  timeout: 45s
generation:
  max_attempts: 3
  structured: true
commentary:
  enabled: false
  timeout: 5s
topics:
  - Riddles
  - K-Drama
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-file", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet", cfg.LLM.Anthropic.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts, "unset keys keep their defaults")
	assert.Equal(t, 3, cfg.Generation.MaxAttempts)
	assert.True(t, cfg.Generation.Structured)
	assert.Equal(t, 300, cfg.Generation.MaxTokens)
	assert.NotEmpty(t, cfg.Generation.Validators)
	assert.False(t, cfg.Commentary.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Commentary.Timeout)
	assert.Equal(t, []string{"Riddles", "K-Drama"}, cfg.Topics)
	assert.Equal(t, []quiz.Topic{"Riddles", "K-Drama"}, cfg.QuizTopics())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cleanEnv(t)
	path := writeFile(t, t.TempDir(), "naevis.yaml", "llm:\n  provider: anthropic\nlog:\n  level: debug\n")
	t.Setenv("NAEVIS_LLM_PROVIDER", "gemini")
	t.Setenv("NAEVIS_GEMINI_API_KEY", "g-env")
	t.Setenv("NAEVIS_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "g-env", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ConfigEnvVar(t *testing.T) {
	cleanEnv(t)
	path := writeFile(t, t.TempDir(), "other.yaml", "topics: [Math]\n")
	t.Setenv("NAEVIS_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Math"}, cfg.Topics)
}

func TestLoad_DefaultLocation(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	writeFile(t, dir, filepath.Join("naevis", "config.yaml"), "llm:\n  provider: mock\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, filepath.Join(dir, "naevis", "config.yaml"), DefaultPath())
}

func TestLoad_Errors(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	bad := writeFile(t, dir, "bad.yaml", "llm: [not, a, map\n")
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoad_DiscoversStandardKeys(t *testing.T) {
	cleanEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	path := writeFile(t, t.TempDir(), "naevis.yaml", "llm:\n  timeout: 10s\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout, "discovery keeps file settings")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ConfiguredKeyWinsOverDiscovery(t *testing.T) {
	cleanEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-std")
	t.Setenv("NAEVIS_OPENAI_API_KEY", "sk-naevis")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-naevis", cfg.LLM.OpenAI.APIKey)
	assert.Empty(t, cfg.LLM.Gemini.APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Default()
		cfg.LLM.Provider = "mock"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock is valid", func(*Config) {}, false},
		{"missing key", func(c *Config) { c.LLM.Provider = "openai" }, true},
		{"zero attempts", func(c *Config) { c.Generation.MaxAttempts = 0 }, true},
		{"no topics", func(c *Config) { c.Topics = nil }, true},
		{"blank topic", func(c *Config) { c.Topics = []string{"Math", ""} }, true},
		{"negative commentary timeout", func(c *Config) { c.Commentary.Timeout = -time.Second }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
