package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizme/internal/spacedrep"
)

// Summary holds the data displayed when a session ends.
type Summary struct {
	SessionID uuid.UUID
	Learner   string
	Reason    Reason
	Duration  time.Duration
	Served    int
	Answered  int
	Correct   int
	Invalid   int
	Accuracy  float64
	Tiers     []spacedrep.TierCount
}

// BuildSummary creates a Summary from the session state and final tiers.
func BuildSummary(state *State, reason Reason, end time.Time, tiers []spacedrep.TierCount) *Summary {
	var accuracy float64
	if state.Answered > 0 {
		accuracy = float64(state.Correct) / float64(state.Answered)
	}

	return &Summary{
		SessionID: state.SessionID,
		Learner:   state.Learner,
		Reason:    reason,
		Duration:  end.Sub(state.StartTime),
		Served:    state.Served,
		Answered:  state.Answered,
		Correct:   state.Correct,
		Invalid:   state.Invalid,
		Accuracy:  accuracy,
		Tiers:     tiers,
	}
}

// String renders the summary as a short multi-line report.
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Answered %d questions, %d correct (%.0f%%) in %s.\n",
		s.Answered, s.Correct, s.Accuracy*100, s.Duration.Round(time.Second))
	if s.Invalid > 0 {
		fmt.Fprintf(&b, "Invalid answers: %d\n", s.Invalid)
	}
	b.WriteString(spacedrep.FormatCounts(s.Tiers))
	return b.String()
}
