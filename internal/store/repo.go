package store

import (
	"context"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/quizme/internal/spacedrep"
)

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData captures a session starting or ending.
type SessionEventData struct {
	SessionID       uuid.UUID
	Action          string
	Learner         string
	QuestionsServed int
	CorrectAnswers  int
	InvalidAnswers  int
	DurationSecs    int
	Reason          string
}

// AnswerEventData captures one graded answer and the move it caused.
type AnswerEventData struct {
	SessionID      uuid.UUID
	QuestionID     uuid.UUID
	Kind           string
	Prompt         string
	ExpectedAnswer string
	LearnerAnswer  string
	Correct        bool
	FromTier       int
	ToTier         int
}

// AnswerEvent is a stored answer with its position in the log.
type AnswerEvent struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// TierSnapshot is the tier population recorded after a move.
type TierSnapshot struct {
	Sequence  int64
	Timestamp time.Time
	SessionID uuid.UUID
	Counts    []spacedrep.TierCount
}

// EventRepo is the append-only session history.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendTierSnapshot(ctx context.Context, sessionID uuid.UUID, counts []spacedrep.TierCount) error

	// SessionAnswers returns a session's answers in log order.
	SessionAnswers(ctx context.Context, sessionID uuid.UUID) ([]AnswerEvent, error)

	// LatestTierSnapshot returns the session's newest snapshot, or nil if
	// none was recorded.
	LatestTierSnapshot(ctx context.Context, sessionID uuid.UUID) (*TierSnapshot, error)
}

type eventRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func newEventRepo(drv *entsql.Driver) *eventRepo {
	return &eventRepo{drv: drv, now: time.Now}
}

// builder returns a SQL builder for the store's dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
