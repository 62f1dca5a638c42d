package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/quizme/internal/session"
	"github.com/abhisek/quizme/internal/spacedrep"
	"github.com/abhisek/quizme/internal/ui/components"
	"github.com/abhisek/quizme/internal/ui/theme"
)

func statusLine(correct, answered int) string {
	return fmt.Sprintf("✓ %d/%d", correct, answered)
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch s.phase {
	case phaseFeedback:
		b.WriteString(s.renderFeedback(width))
	case phaseDone:
		b.WriteString(centered(width, theme.Subtitle.Render("Wrapping up...")))
	default:
		b.WriteString(s.renderQuestion(width))
	}

	b.WriteString("\n\n")
	b.WriteString(renderTiers(s.ctrl.Counts(), width))
	return b.String()
}

func (s *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(questionStyle.Render(s.text))))
	b.WriteString("\n\n")

	b.WriteString(centered(width, s.input.View()))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Warning.Render(s.notice)))
	}
	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder

	b.WriteString(centered(width, theme.Body.Render(s.text)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, s.input.View()))
	b.WriteString("\n\n")

	if s.outcome.Verdict == sess.VerdictCorrect {
		b.WriteString(centered(width, theme.Correct.Render(s.outcome.Feedback)))
	} else {
		msg := lipgloss.NewStyle().Width(min(width-8, 70)).Align(lipgloss.Center).
			Render(theme.Incorrect.Render(s.outcome.Feedback))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, msg))
	}
	b.WriteString("\n")

	tr := s.outcome.Transition
	move := fmt.Sprintf("%s → %s",
		spacedrep.TierDefs[tr.From].Name, spacedrep.TierDefs[tr.To].Name)
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TierColor(tr.To)).Render(move)))
	return b.String()
}

// renderTiers draws one bar per tier, sized by its share of all questions.
func renderTiers(counts []spacedrep.TierCount, width int) string {
	total := 0
	labelWidth := 0
	for _, c := range counts {
		total += c.Size
		labelWidth = max(labelWidth, lipgloss.Width(c.Name))
	}

	barWidth := min(width-8, 70)
	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		bar := components.NewTierBar(c.Name, c.Size, total, theme.TierColor(c.Index), barWidth)
		lines = append(lines, bar.View(labelWidth))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
