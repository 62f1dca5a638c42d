package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/abhisek/quizme/internal/question"
)

// Messages shown by the plain-text loop.
const (
	MsgStart    = "Starting quiz session. Type 'q' to quit at any time."
	MsgPrompt   = "Your answer: "
	MsgComplete = "All questions have been reviewed. Session complete!"
	MsgGoodbye  = "Thank you, goodbye!"
)

// Welcome returns the greeting for learner.
func Welcome(learner string) string {
	return fmt.Sprintf("Welcome, %s! Let's start your adaptive quiz session.", learner)
}

// Run drives ctrl through term until no question is due, the learner quits
// or ctx is cancelled.
func Run(ctx context.Context, ctrl *Controller, term IO) (*Summary, error) {
	term.Println(Welcome(ctrl.Learner()))
	term.Println(MsgStart)
	ctrl.Start(ctx)

	for {
		if ctx.Err() != nil {
			term.Println(MsgGoodbye)
			return ctrl.Finish(context.WithoutCancel(ctx), ReasonQuit), nil
		}

		q, text, ok := ctrl.Next()
		if !ok {
			term.Println(MsgComplete)
			return ctrl.Finish(ctx, ReasonCompleted), nil
		}

		term.Println("")
		term.Println(text)

		quit, err := answerLoop(ctx, ctrl, term, q)
		if err != nil {
			return nil, err
		}
		if quit {
			term.Println(MsgGoodbye)
			return ctrl.Finish(context.WithoutCancel(ctx), ReasonQuit), nil
		}
	}
}

// answerLoop reads answers for q until one is graded or the learner quits.
func answerLoop(ctx context.Context, ctrl *Controller, term IO, q *question.Question) (quit bool, err error) {
	for {
		input, err := term.ReadAnswer(MsgPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return false, fmt.Errorf("read answer: %w", err)
		}
		if ctx.Err() != nil {
			return true, nil
		}

		out, err := ctrl.Submit(ctx, q, input)
		if err != nil {
			return false, err
		}
		switch out.Verdict {
		case VerdictQuit:
			return true, nil
		case VerdictInvalid:
			term.Println(out.Feedback)
			continue
		default:
			term.Println(out.Feedback)
			return false, nil
		}
	}
}
