// Package config loads the naevis configuration from defaults, an
// optional YAML file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/phoebegrace/NoFilterNaevis/internal/commentary"
	"github.com/phoebegrace/NoFilterNaevis/internal/llm"
	"github.com/phoebegrace/NoFilterNaevis/internal/logger"
	"github.com/phoebegrace/NoFilterNaevis/internal/problemgen"
	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

// Config is the complete application configuration.
type Config struct {
	LLM        llm.Config        `yaml:"llm"`
	Generation problemgen.Config `yaml:"generation"`
	Commentary commentary.Config `yaml:"commentary"`

	// Topics replaces the built-in topic list when non-empty.
	Topics []string `yaml:"topics"`

	Log logger.Options `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	topics := make([]string, len(quiz.DefaultTopics))
	for i, t := range quiz.DefaultTopics {
		topics[i] = t.String()
	}
	return Config{
		LLM:        llm.DefaultConfig(),
		Generation: problemgen.DefaultConfig(),
		Commentary: commentary.DefaultConfig(),
		Topics:     topics,
		Log:        logger.Options{Level: "info"},
	}
}

// Load builds a Config. path is the --config flag value; when empty,
// NAEVIS_CONFIG and then the default location are tried, and a missing
// default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("NAEVIS_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	llm.ApplyEnv(&cfg.LLM)
	if v := os.Getenv("NAEVIS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if cfg.LLM.HasKey() {
		return
	}
	found, ok := llm.DiscoverConfig()
	if !ok {
		return
	}
	cfg.LLM.Provider = found.Provider
	switch found.Provider {
	case "gemini":
		cfg.LLM.Gemini.APIKey = found.Gemini.APIKey
	case "openai":
		cfg.LLM.OpenAI.APIKey = found.OpenAI.APIKey
	case "anthropic":
		cfg.LLM.Anthropic.APIKey = found.Anthropic.APIKey
	case "openrouter":
		cfg.LLM.OpenRouter.APIKey = found.OpenRouter.APIKey
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/naevis/config.yaml, falling back
// to ~/.config. It returns "" if no home directory can be found.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "naevis", "config.yaml")
}

// QuizTopics returns Topics as quiz.Topic values.
func (c Config) QuizTopics() []quiz.Topic {
	out := make([]quiz.Topic, 0, len(c.Topics))
	for _, t := range c.Topics {
		out = append(out, quiz.Topic(t))
	}
	return out
}

// Validate checks everything the game needs before it can start.
func (c Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("%w (set NAEVIS_LLM_PROVIDER=mock to play offline)", err)
	}
	if c.Generation.MaxAttempts <= 0 {
		return fmt.Errorf("generation.max_attempts must be positive, got %d", c.Generation.MaxAttempts)
	}
	if len(c.Topics) == 0 {
		return fmt.Errorf("topics must not be empty")
	}
	for i, t := range c.Topics {
		if t == "" {
			return fmt.Errorf("topics[%d] is empty", i)
		}
	}
	if c.Commentary.Timeout < 0 {
		return fmt.Errorf("commentary.timeout must not be negative, got %s", c.Commentary.Timeout)
	}
	return nil
}
