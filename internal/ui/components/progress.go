package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizme/internal/ui/theme"
)

// TierBar displays one tier's share of all questions as a horizontal bar.
type TierBar struct {
	Label string
	Size  int
	Total int
	Color color.Color
	Width int
}

// NewTierBar creates a bar for size out of total questions.
func NewTierBar(label string, size, total int, c color.Color, width int) TierBar {
	return TierBar{Label: label, Size: size, Total: total, Color: c, Width: width}
}

// Percent returns the filled fraction in [0, 1].
func (p TierBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Size) / float64(p.Total)
}

// View renders the bar as "label  ████░░░░  n".
func (p TierBar) View(labelWidth int) string {
	label := lipgloss.NewStyle().
		Foreground(p.Color).
		Width(labelWidth).
		Render(p.Label)

	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %3d", p.Size))

	barWidth := p.Width - lipgloss.Width(label) - lipgloss.Width(count) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	if p.Size > 0 && filled == 0 {
		filled = 1
	}
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(p.Color).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return label + "  " + filledStr + emptyStr + count
}
