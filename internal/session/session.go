package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizme/internal/question"
	"github.com/abhisek/quizme/internal/spacedrep"
	"github.com/abhisek/quizme/internal/store"
)

// QuitSentinel ends the session when entered as an answer (any case).
const QuitSentinel = "q"

// FeedbackCorrect is shown after an accepted answer.
const FeedbackCorrect = "Correct!"

// Controller sequences one quiz session over a Scheduler: it asks for the
// next due question, grades submitted answers and reports the verdict back.
type Controller struct {
	sched  Scheduler
	state  *State
	clock  func() time.Time
	events EventRecorder
	log    logrus.FieldLogger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source used for presentation and due checks.
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithEventRecorder records session and answer events.
func WithEventRecorder(r EventRecorder) Option {
	return func(c *Controller) { c.events = r }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// WithSessionID fixes the session id instead of generating one.
func WithSessionID(id uuid.UUID) Option {
	return func(c *Controller) { c.state.SessionID = id }
}

// NewController creates a controller for learner over sched.
func NewController(sched Scheduler, learner string, opts ...Option) *Controller {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Controller{
		sched: sched,
		state: newState(uuid.New(), learner, time.Time{}),
		clock: time.Now,
		log:   discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state.StartTime = c.clock()
	c.log = c.log.WithField("session", c.state.SessionID.String())
	return c
}

// State returns the live session counters.
func (c *Controller) State() *State { return c.state }

// Learner returns the learner's name.
func (c *Controller) Learner() string { return c.state.Learner }

// Counts returns the current tier populations.
func (c *Controller) Counts() []spacedrep.TierCount { return c.sched.Counts() }

// Start marks the beginning of the session.
func (c *Controller) Start(ctx context.Context) {
	c.state.StartTime = c.clock()
	c.log.WithField("learner", c.state.Learner).Info("session started")
	c.recordSession(ctx, store.SessionEventData{Action: store.ActionStart})
}

// Next presents the next due question and returns it with its display text.
// ok is false when no question is due, which ends the session.
func (c *Controller) Next() (q *question.Question, text string, ok bool) {
	now := c.clock()
	q = c.sched.NextQuestion(now)
	if q == nil {
		return nil, "", false
	}
	c.state.Served++
	return q, q.Present(now), true
}

// Submit grades input against q and reschedules it. Invalid true/false input
// leaves q untouched so the caller can re-prompt it. A scheduler error means
// q was never tracked and is returned as-is.
func (c *Controller) Submit(ctx context.Context, q *question.Question, input string) (Outcome, error) {
	if IsQuit(input) {
		return Outcome{Verdict: VerdictQuit}, nil
	}

	correct, err := q.CheckAnswer(input)
	if err != nil {
		if errors.Is(err, question.ErrInvalidAnswer) {
			c.state.Invalid++
			c.log.WithField("question", q.ID().String()).Debug("invalid answer")
			return Outcome{Verdict: VerdictInvalid, Feedback: err.Error()}, nil
		}
		return Outcome{}, fmt.Errorf("check answer: %w", err)
	}

	tr, err := c.sched.Move(q, correct)
	if err != nil {
		return Outcome{}, fmt.Errorf("reschedule question: %w", err)
	}

	c.state.Answered++
	out := Outcome{Verdict: VerdictIncorrect, Feedback: q.IncorrectFeedback(), Transition: tr}
	if correct {
		c.state.Correct++
		out.Verdict = VerdictCorrect
		out.Feedback = FeedbackCorrect
	}

	c.log.WithFields(logrus.Fields{
		"question": q.ID().String(),
		"verdict":  out.Verdict.String(),
		"from":     tr.From,
		"to":       tr.To,
	}).Debug("answer graded")

	if c.events != nil {
		err := c.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:      c.state.SessionID,
			QuestionID:     q.ID(),
			Kind:           string(q.Kind()),
			Prompt:         q.Prompt(),
			ExpectedAnswer: q.ExpectedAnswer(),
			LearnerAnswer:  input,
			Correct:        correct,
			FromTier:       tr.From,
			ToTier:         tr.To,
		})
		if err != nil {
			c.log.WithError(err).Warn("failed to record answer")
		}
	}
	return out, nil
}

// Finish ends the session and returns its summary.
func (c *Controller) Finish(ctx context.Context, reason Reason) *Summary {
	summary := BuildSummary(c.state, reason, c.clock(), c.sched.Counts())

	c.log.WithFields(logrus.Fields{
		"reason":   string(reason),
		"answered": summary.Answered,
		"correct":  summary.Correct,
		"duration": summary.Duration.String(),
	}).Info("session finished")

	c.recordSession(ctx, store.SessionEventData{
		Action:          store.ActionEnd,
		QuestionsServed: summary.Served,
		CorrectAnswers:  summary.Correct,
		InvalidAnswers:  summary.Invalid,
		DurationSecs:    int(summary.Duration.Seconds()),
		Reason:          string(reason),
	})
	return summary
}

func (c *Controller) recordSession(ctx context.Context, data store.SessionEventData) {
	if c.events == nil {
		return
	}
	data.SessionID = c.state.SessionID
	data.Learner = c.state.Learner
	if err := c.events.AppendSessionEvent(ctx, data); err != nil {
		c.log.WithError(err).Warn("failed to record session event")
	}
}

// IsQuit reports whether input is the quit sentinel.
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), QuitSentinel)
}
