package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	_, err := r.appendEvent(ctx, "session_events",
		[]string{"session_id", "action", "learner", "questions_served",
			"correct_answers", "invalid_answers", "duration_secs", "reason"},
		data.SessionID.String(), data.Action, data.Learner, data.QuestionsServed,
		data.CorrectAnswers, data.InvalidAnswers, data.DurationSecs, data.Reason,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	_, err := r.appendEvent(ctx, "answer_events",
		[]string{"session_id", "question_id", "kind", "prompt", "expected_answer",
			"learner_answer", "correct", "from_tier", "to_tier"},
		data.SessionID.String(), data.QuestionID.String(), data.Kind, data.Prompt,
		data.ExpectedAnswer, data.LearnerAnswer, data.Correct, data.FromTier, data.ToTier,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionAnswers(ctx context.Context, sessionID uuid.UUID) ([]AnswerEvent, error) {
	query, args := builder().
		Select("sequence", "timestamp", "question_id", "kind", "prompt",
			"expected_answer", "learner_answer", "correct", "from_tier", "to_tier").
		From(entsql.Table("answer_events")).
		Where(entsql.EQ("session_id", sessionID.String())).
		OrderBy("sequence").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query session answers: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var (
			e          AnswerEvent
			ts         int64
			questionID string
		)
		err := rows.Scan(&e.Sequence, &ts, &questionID, &e.Kind, &e.Prompt,
			&e.ExpectedAnswer, &e.LearnerAnswer, &e.Correct, &e.FromTier, &e.ToTier)
		if err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		if e.QuestionID, err = uuid.Parse(questionID); err != nil {
			return nil, fmt.Errorf("parse question id %q: %w", questionID, err)
		}
		e.SessionID = sessionID
		e.Timestamp = fromMillis(ts)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer events: %w", err)
	}
	return events, nil
}
