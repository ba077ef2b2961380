package problemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phoebegrace/NoFilterNaevis/internal/llm"
	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

// LLMSource implements Source using an LLM provider.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// NewLLMSource creates an LLMSource with the given provider and config.
func NewLLMSource(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// questionOutput is the structured-mode response body.
type questionOutput struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
	Answer   string `json:"answer"`
}

// Generate asks the provider for one question and returns it as raw text.
// Structured responses are rendered back into the marker layout so every
// source shares the same parser.
func (s *LLMSource) Generate(ctx context.Context, req Request) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	llmReq := llm.UserPrompt(buildSystemPrompt(s.config), buildUserMessage(req, s.config))
	llmReq.MaxTokens = s.config.MaxTokens
	llmReq.Temperature = s.config.Temperature
	if s.config.Structured {
		llmReq.Schema = QuestionSchema
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	if !s.config.Structured {
		return resp.Text(), nil
	}

	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return quiz.FormatRecord(quiz.QuestionRecord{
		Question: out.Question,
		Hint:     out.Hint,
		Answer:   out.Answer,
	}), nil
}
