package session

import (
	"context"
	"time"

	"github.com/phoebegrace/NoFilterNaevis/internal/store"
)

// Summary is the end-of-session report.
type Summary struct {
	SessionID string
	Duration  time.Duration
	Asked     int
	Answered  int
	Correct   int
	Overrides int
	Score     int
}

// Accuracy returns Correct/Answered as a fraction, or 0 with nothing
// answered. Overrides do not count.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// End closes the session and returns its summary. An end event is
// recorded only if a question was ever displayed. Calling End more than
// once returns the same totals.
func (m *Machine) End(ctx context.Context) Summary {
	s := m.session
	sum := Summary{
		SessionID: s.ID,
		Asked:     s.Asked,
		Answered:  s.Answered,
		Correct:   s.Correct,
		Overrides: s.Overrides,
		Score:     s.Score.Total(),
	}
	if m.started {
		sum.Duration = m.now().Sub(s.StartTime)
	}
	if !m.started || m.ended {
		return sum
	}
	m.ended = true

	m.log.Info("session ended",
		"asked", sum.Asked, "correct", sum.Correct, "score", sum.Score,
		"duration", sum.Duration.Round(time.Second).String())
	if m.events == nil {
		return sum
	}
	err := m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      s.ID,
		Action:         store.SessionEnd,
		QuestionsAsked: sum.Asked,
		CorrectAnswers: sum.Correct,
		Score:          sum.Score,
		DurationSecs:   int(sum.Duration.Seconds()),
	})
	if err != nil {
		m.log.Warn("failed to record session end", "error", err)
	}
	return sum
}

// Answers returns this session's recorded verdicts in order, including
// overrides. Without an audit log there is nothing to return.
func (m *Machine) Answers(ctx context.Context) ([]store.AnswerEvent, error) {
	if m.events == nil {
		return nil, nil
	}
	return m.events.SessionAnswers(ctx, m.session.ID)
}
