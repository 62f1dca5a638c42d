package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizme/internal/question"
	"github.com/abhisek/quizme/internal/spacedrep"
	"github.com/abhisek/quizme/internal/store"
)

// Scheduler is the subset of the spaced repetition scheduler a session drives.
type Scheduler interface {
	NextQuestion(now time.Time) *question.Question
	Move(q *question.Question, correct bool) (spacedrep.Transition, error)
	Counts() []spacedrep.TierCount
}

// EventRecorder receives the session's history. store.EventRepo satisfies it.
type EventRecorder interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// Verdict classifies a submitted answer.
type Verdict int

const (
	VerdictCorrect   Verdict = iota // Answer accepted, question promoted
	VerdictIncorrect                // Answer rejected, question sent to Missed
	VerdictInvalid                  // Unparseable input, question unchanged
	VerdictQuit                     // Learner asked to stop
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictInvalid:
		return "invalid"
	case VerdictQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the result of submitting one answer.
type Outcome struct {
	Verdict  Verdict
	Feedback string

	// Transition is set for correct and incorrect verdicts.
	Transition spacedrep.Transition
}

// Reason records why a session ended.
type Reason string

const (
	ReasonCompleted Reason = "completed"
	ReasonQuit      Reason = "quit"
)

// State tracks the runtime counters of an active session.
type State struct {
	SessionID uuid.UUID
	Learner   string
	StartTime time.Time

	// Served counts questions handed out by Next. Re-prompts after invalid
	// input reuse the current question and are not counted.
	Served int

	// Answered counts graded answers (correct or incorrect).
	Answered int

	Correct int
	Invalid int
}

func newState(id uuid.UUID, learner string, start time.Time) *State {
	return &State{SessionID: id, Learner: learner, StartTime: start}
}
