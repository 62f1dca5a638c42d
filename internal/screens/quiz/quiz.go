package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizme/internal/question"
	"github.com/abhisek/quizme/internal/screen"
	sess "github.com/abhisek/quizme/internal/session"
	"github.com/abhisek/quizme/internal/ui/components"
	"github.com/abhisek/quizme/internal/ui/layout"
)

const placeholder = "Type your answer..."

type phase int

const (
	phaseAsking   phase = iota // Waiting for an answer
	phaseFeedback              // Showing the graded answer
	phaseDone                  // Session finished
)

// QuizScreen runs a session.Controller inside the TUI.
type QuizScreen struct {
	ctx     context.Context
	ctrl    *sess.Controller
	phase   phase
	current *question.Question
	text    string
	input   components.AnswerInput
	outcome sess.Outcome
	notice  string // invalid-input message for the current question
	summary *sess.Summary
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen over ctrl. ctx is used for event recording.
func New(ctx context.Context, ctrl *sess.Controller) *QuizScreen {
	return &QuizScreen{
		ctx:   ctx,
		ctrl:  ctrl,
		input: components.NewAnswerInput(placeholder, 0),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.ctrl.Start(s.ctx)
	return s.advance()
}

func (s *QuizScreen) Title() string {
	return "Quiz: " + s.ctrl.Learner()
}

func (s *QuizScreen) Status() string {
	st := s.ctrl.State()
	return statusLine(st.Correct, st.Answered)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case phaseDone:
		return nil
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if s.phase != phaseFeedback {
			return s, nil
		}
		return s, s.advance()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAsking {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseFeedback:
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	case phaseDone:
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, s.finish(sess.ReasonQuit)
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	out, err := s.ctrl.Submit(s.ctx, s.current, answer)
	if err != nil {
		s.phase = phaseDone
		return s, func() tea.Msg { return FailedMsg{Err: err} }
	}

	switch out.Verdict {
	case sess.VerdictQuit:
		return s, s.finish(sess.ReasonQuit)
	case sess.VerdictInvalid:
		s.notice = out.Feedback
		s.input.Clear()
		return s, nil
	}

	s.outcome = out
	s.notice = ""
	s.input.Submit(out.Verdict == sess.VerdictCorrect)
	s.phase = phaseFeedback
	return s, nil
}

// advance serves the next due question or ends the session.
func (s *QuizScreen) advance() tea.Cmd {
	q, text, ok := s.ctrl.Next()
	if !ok {
		return s.finish(sess.ReasonCompleted)
	}
	s.current = q
	s.text = text
	s.notice = ""
	s.outcome = sess.Outcome{}
	s.phase = phaseAsking
	s.input = components.NewAnswerInput(placeholder, 0)
	return s.input.Init()
}

func (s *QuizScreen) finish(reason sess.Reason) tea.Cmd {
	if s.phase == phaseDone {
		return nil
	}
	s.phase = phaseDone
	s.summary = s.ctrl.Finish(s.ctx, reason)
	summary := s.summary
	return func() tea.Msg { return FinishedMsg{Summary: summary} }
}

// Summary returns the session summary, or nil while the session is running
// or if it failed.
func (s *QuizScreen) Summary() *sess.Summary {
	return s.summary
}

// Finished reports whether the session has ended.
func (s *QuizScreen) Finished() bool {
	return s.phase == phaseDone
}
