package problemgen

import (
	"strings"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

// StructuralValidator rejects well-formed records that are missing an
// answer or echo the answer inside the question.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(rec quiz.QuestionRecord, degraded bool, _ Request) *ValidationError {
	// Fallback records carry the sentinel answer by construction.
	if degraded {
		return nil
	}
	if rec.Answer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
			Retryable: true,
		}
	}
	if strings.EqualFold(strings.TrimSpace(rec.Question), strings.TrimSpace(rec.Answer)) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer repeats the question",
			Retryable: true,
		}
	}
	return nil
}
