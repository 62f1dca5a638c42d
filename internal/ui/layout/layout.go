// Package layout draws the chrome around the active screen: a header bar
// with the app name, screen title and status, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizme/internal/ui/theme"
)

// Smallest terminal the quiz renders in.
const (
	MinWidth  = 60
	MinHeight = 20
)

const appName = "quizme"

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

var (
	barStyle = lipgloss.NewStyle().
			Background(theme.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)

	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the window with a resize request.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("Terminal too small!\n\nquizme needs %d x %d\nyours is %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		titleStyle.Render(text))
}

// RenderHeader lays out the app name on the left, title in the middle and
// status on the right of a bordered bar.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)
	left := brandStyle.Render("  " + appName)
	mid := titleStyle.Render(title)
	right := statusStyle.Render(status)

	// Centre the title, then give the status whatever room is left.
	gapL := max((inner-lipgloss.Width(mid))/2-lipgloss.Width(left), 1)
	gapR := max(inner-lipgloss.Width(left)-gapL-lipgloss.Width(mid)-lipgloss.Width(right), 1)

	line := left + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + right
	return barStyle.Width(width).Render(line)
}

// RenderFooter lists hints in order.
func RenderFooter(hints []KeyHint, width int) string {
	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(h.Description))
	}
	return barStyle.Width(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, padding the content so
// the frame fills height rows.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	padded := lipgloss.NewStyle().Width(width).Height(body).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, padded, footer)
}
