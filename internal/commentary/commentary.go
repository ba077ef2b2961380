// Package commentary produces Naevis' remarks on a verdict.
package commentary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phoebegrace/NoFilterNaevis/internal/llm"
)

// Service returns flavor text for a correct or incorrect answer.
type Service interface {
	Comment(ctx context.Context, correct bool) (string, error)
}

// Config controls commentary generation.
type Config struct {
	// Enabled turns commentary off entirely when false.
	Enabled bool `yaml:"enabled"`

	// Timeout bounds one commentary request. Default: 15s.
	Timeout time.Duration `yaml:"timeout"`

	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		Timeout:     15 * time.Second,
		MaxTokens:   120,
		Temperature: 1.0,
	}
}

// ErrCommentary wraps a failed commentary request.
type ErrCommentary struct {
	Err error
}

func (e *ErrCommentary) Error() string {
	return fmt.Sprintf("commentary failed: %v", e.Err)
}

func (e *ErrCommentary) Unwrap() error { return e.Err }

const systemPrompt = `You are Naevis, the host of a quiz game. You are playful, a little sarcastic and never mean.
Reply with one or two sentences of Taglish (a casual mix of Tagalog and English). No hashtags, no emojis, no quotation marks.`

// LLMService implements Service with an LLM provider.
type LLMService struct {
	provider llm.Provider
	config   Config
}

// NewLLMService creates an LLMService.
func NewLLMService(provider llm.Provider, cfg Config) *LLMService {
	return &LLMService{provider: provider, config: cfg}
}

func (s *LLMService) Comment(ctx context.Context, correct bool) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCommentary)
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	req := llm.UserPrompt(systemPrompt, buildPrompt(correct))
	req.MaxTokens = s.config.MaxTokens
	req.Temperature = s.config.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", &ErrCommentary{Err: err}
	}

	comment := strings.Trim(strings.TrimSpace(resp.Text()), `"`)
	if comment == "" {
		return "", &ErrCommentary{Err: fmt.Errorf("empty response")}
	}
	return comment, nil
}

func buildPrompt(correct bool) string {
	verdict := "an incorrect"
	if correct {
		verdict = "a correct"
	}
	return fmt.Sprintf("Generate a humorous and sarcastic Taglish comment for %s answer.", verdict)
}

// Nop is a Service that never comments.
type Nop struct{}

func (Nop) Comment(context.Context, bool) (string, error) { return "", nil }
