package problemgen

import "fmt"

// ErrGeneration wraps a failure of the question source. The LLM layer has
// already retried transient errors by the time this surfaces.
type ErrGeneration struct {
	Attempt int
	Err     error
}

func (e *ErrGeneration) Error() string {
	return fmt.Sprintf("question generation failed on attempt %d: %v", e.Attempt, e.Err)
}

func (e *ErrGeneration) Unwrap() error { return e.Err }

// ErrGenerationExhausted means every attempt produced an empty, rejected
// or already-asked question.
type ErrGenerationExhausted struct {
	Attempts   int
	Duplicates int
	Empty      int
	Rejected   int
}

func (e *ErrGenerationExhausted) Error() string {
	return fmt.Sprintf("no new question after %d attempts (%d duplicate, %d empty, %d rejected)",
		e.Attempts, e.Duplicates, e.Empty, e.Rejected)
}
