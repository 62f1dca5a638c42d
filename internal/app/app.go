package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizme/internal/router"
	"github.com/abhisek/quizme/internal/screen"
	"github.com/abhisek/quizme/internal/screens/quiz"
	"github.com/abhisek/quizme/internal/screens/summary"
	"github.com/abhisek/quizme/internal/session"
	"github.com/abhisek/quizme/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	quiz   *quiz.QuizScreen
	width  int
	height int
	err    error
}

// newAppModel creates an AppModel that opens on the quiz screen.
func newAppModel(ctx context.Context, ctrl *session.Controller) AppModel {
	q := quiz.New(ctx, ctrl)
	return AppModel{
		router: router.New(q),
		quiz:   q,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.quiz.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case quiz.FinishedMsg:
		next := summary.New(msg.Summary)
		return m, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case quiz.FailedMsg:
		m.err = msg.Err
		return m, tea.Quit
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	var hints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run drives ctrl through the full-screen interface until the learner
// leaves the summary. A session interrupted with Ctrl+C or by ctx is
// finished as quit.
func Run(ctx context.Context, ctrl *session.Controller, opts ...tea.ProgramOption) (*session.Summary, error) {
	model := newAppModel(ctx, ctrl)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)
	final, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("run interface: %w", err)
	}

	if m, ok := final.(AppModel); ok && m.err != nil {
		return nil, m.err
	}
	if sum := model.quiz.Summary(); sum != nil {
		return sum, nil
	}
	return ctrl.Finish(context.WithoutCancel(ctx), session.ReasonQuit), nil
}
