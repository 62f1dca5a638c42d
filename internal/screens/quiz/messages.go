package quiz

import (
	sess "github.com/abhisek/quizme/internal/session"
)

// FinishedMsg is emitted once the session has ended and been recorded.
type FinishedMsg struct {
	Summary *sess.Summary
}

// FailedMsg is emitted when the session cannot continue.
type FailedMsg struct {
	Err error
}

// feedbackDoneMsg dismisses the feedback overlay.
type feedbackDoneMsg struct{}
