package problemgen

import (
	"fmt"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

// Validator checks a parsed question record before it reaches the player.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if rec passes. degraded reports whether rec
	// came from the parser fallback.
	Validate(rec quiz.QuestionRecord, degraded bool, req Request) *ValidationError
}

// ValidationError describes why a record failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
