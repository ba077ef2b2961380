package llm

// Friendly model names accepted in config, per provider. Anything not
// listed is passed through as a provider model ID.
var (
	anthropicModels = map[string]string{
		"claude-sonnet": "claude-sonnet-4-20250514",
		"claude-haiku":  "claude-haiku-4-5-20251001",
	}
	openaiModels = map[string]string{
		"gpt-4o":      "gpt-4o",
		"gpt-4o-mini": "gpt-4o-mini",
	}
	geminiModels = map[string]string{
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.0-pro",
	}
)

// defaultMaxTokens applies when a request leaves MaxTokens at zero and
// the provider requires a limit.
const defaultMaxTokens = 1024

func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

// Normalized stop reasons.
const (
	stopEnd       = "end"
	stopMaxTokens = "max_tokens"
	stopError     = "error"
)

// finish builds the Response for a completed call. Structured output is
// cleaned and validated; a structured answer cut off by the token limit
// can never validate, so it is reported as such.
func finish(req Request, content []byte, usage Usage, model, stop string) (*Response, error) {
	if req.Schema != nil && stop == stopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	cleaned, err := structuredContent(req.Schema, content)
	if err != nil {
		return nil, err
	}
	return &Response{Content: cleaned, Usage: usage, Model: model, StopReason: stop}, nil
}
