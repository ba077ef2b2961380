package problemgen

import (
	"context"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

// Request is what a Source needs to produce one question.
type Request struct {
	Topic      quiz.Topic
	Difficulty quiz.Difficulty

	// Avoid holds recently asked questions, oldest first. Sources should
	// steer away from them; the pipeline enforces uniqueness regardless.
	Avoid []string
}

// Source produces raw question text in the "Question: ... Hint: ...
// Answer: ..." layout. It may return anything; the pipeline parses it.
type Source interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// SessionState is the slice of a quiz session the pipeline reads and
// updates.
type SessionState interface {
	// HasSeen reports whether question text was already asked.
	HasSeen(question string) bool

	// RecentQuestions returns up to n most recently asked questions.
	RecentQuestions(n int) []string

	// StartQuestion installs rec as the current question, records it as
	// seen and clears per-question answer state.
	StartQuestion(rec quiz.QuestionRecord, topic quiz.Topic, difficulty quiz.Difficulty, degraded bool)
}
