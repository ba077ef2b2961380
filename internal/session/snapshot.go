package session

import "github.com/phoebegrace/NoFilterNaevis/internal/quiz"

// Snapshot is a read-only copy of everything a presentation surface
// renders.
type Snapshot struct {
	SessionID string
	Phase     Phase

	// Selection used for the next generated question.
	SelectedTopic      quiz.Topic
	SelectedDifficulty quiz.Difficulty

	HasQuestion bool
	Topic       quiz.Topic
	Difficulty  quiz.Difficulty
	Question    string
	Hint        string

	// Answer is the reference answer. Only show it once Checked.
	Answer string

	UserAnswer  string
	Checked     bool
	Correct     *bool
	Commentary  string
	Degraded    bool
	Overridden  bool
	CanOverride bool

	Score     int
	Asked     int
	Answered  int
	NumRight  int
	Overrides int
}

// Snapshot returns the current state. Mutating the result never affects
// the session.
func (m *Machine) Snapshot() Snapshot {
	s := m.session
	snap := Snapshot{
		SessionID:          s.ID,
		Phase:              m.phase,
		SelectedTopic:      m.topic,
		SelectedDifficulty: m.difficulty,
		Topic:              s.Topic,
		Difficulty:         s.Difficulty,
		UserAnswer:         s.LastUserAnswer,
		Checked:            s.Checked,
		Commentary:         s.Commentary,
		Degraded:           s.Degraded,
		Overridden:         s.Overridden,
		CanOverride:        m.canOverride() == "",
		Score:              s.Score.Total(),
		Asked:              s.Asked,
		Answered:           s.Answered,
		NumRight:           s.Correct,
		Overrides:          s.Overrides,
	}
	if s.Current != nil {
		snap.HasQuestion = true
		snap.Question = s.Current.Question
		snap.Hint = s.Current.Hint
		snap.Answer = s.Current.Answer
	}
	if s.AnswerCorrect != nil {
		v := *s.AnswerCorrect
		snap.Correct = &v
	}
	return snap
}
