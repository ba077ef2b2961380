package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insert(ctx, "session_events",
		[]string{"session_id", "action", "questions_asked", "correct_answers", "score", "duration_secs"},
		data.SessionID, data.Action, data.QuestionsAsked, data.CorrectAnswers, data.Score, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
