package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	err := r.insert(ctx, "answer_events",
		[]string{"session_id", "kind", "topic", "difficulty", "question",
			"correct_answer", "user_answer", "correct", "points"},
		data.SessionID, data.Kind, data.Topic, data.Difficulty, data.Question,
		data.CorrectAnswer, data.UserAnswer, data.Correct, data.Points,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerEvent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, sequence, timestamp, session_id, kind,
		topic, difficulty, question, correct_answer, user_answer, correct, points
		FROM answer_events WHERE session_id = ? ORDER BY sequence`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query session answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var e AnswerEvent
		var ts int64
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SessionID, &e.Kind,
			&e.Topic, &e.Difficulty, &e.Question, &e.CorrectAnswer, &e.UserAnswer,
			&e.Correct, &e.Points); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		e.Timestamp = fromMillis(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}
