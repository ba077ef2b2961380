package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

// Phase is where the session is in the question/answer cycle.
type Phase int

const (
	PhaseIdle     Phase = iota // No question yet
	PhaseQuestion              // Question displayed, awaiting an answer
	PhaseAnswered              // Answer checked, feedback showing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseQuestion:
		return "question"
	case PhaseAnswered:
		return "answered"
	}
	return "unknown"
}

// QuizSession is the state of one player's quiz run. It lives for the
// life of the process and is never persisted.
type QuizSession struct {
	// ID is a UUID used to correlate audit log events.
	ID        string
	StartTime time.Time

	// Current is the question on screen, nil before the first one.
	Current *quiz.QuestionRecord

	// Topic and Difficulty the current question was generated with.
	Topic      quiz.Topic
	Difficulty quiz.Difficulty

	LastUserAnswer string

	// Checked is reset to false for every new question.
	Checked bool

	// AnswerCorrect is non-nil iff Checked.
	AnswerCorrect *bool

	Commentary string

	// Degraded is set when Current came from the parser fallback.
	Degraded bool

	// Overridden is set once the player has overridden the current verdict.
	// Further overrides stay allowed and award again.
	Overridden bool

	// Seen holds every question asked so far, oldest first.
	Seen *quiz.SeenSet

	Score quiz.Score

	Asked     int
	Answered  int
	Correct   int
	Overrides int
}

// NewQuizSession returns an empty session with a fresh ID.
func NewQuizSession() *QuizSession {
	return &QuizSession{
		ID:        uuid.NewString(),
		StartTime: time.Now(),
		Seen:      quiz.NewSeenSet(),
	}
}

func (s *QuizSession) HasSeen(question string) bool {
	return s.Seen.Has(question)
}

func (s *QuizSession) RecentQuestions(n int) []string {
	return s.Seen.Recent(n)
}

// StartQuestion installs rec as the current question and clears the
// previous question's answer state.
func (s *QuizSession) StartQuestion(rec quiz.QuestionRecord, topic quiz.Topic, difficulty quiz.Difficulty, degraded bool) {
	s.Seen.Add(rec.Question)
	s.Current = &rec
	s.Topic = topic
	s.Difficulty = difficulty
	s.Degraded = degraded

	s.LastUserAnswer = ""
	s.Checked = false
	s.AnswerCorrect = nil
	s.Commentary = ""
	s.Overridden = false

	s.Asked++
}
