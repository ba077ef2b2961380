package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/router"
	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
	"github.com/phoebegrace/NoFilterNaevis/internal/screens/home"
	sessionscreen "github.com/phoebegrace/NoFilterNaevis/internal/screens/session"
	"github.com/phoebegrace/NoFilterNaevis/internal/screens/welcome"
	"github.com/phoebegrace/NoFilterNaevis/internal/session"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Machine *session.Machine

	// Offline marks the built-in question bank, shown on the home screen.
	Offline bool

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int

	// Last score reported by a screen, kept for screens that don't report.
	score int
	asked int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	quizFactory := func() screen.Screen {
		return sessionscreen.New(ctx, opts.Machine)
	}
	homeFactory := func() screen.Screen {
		return home.New(opts.Machine, quizFactory, opts.Offline)
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}
	return AppModel{
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
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
	}

	cmd := m.router.Update(msg)
	if sp, ok := m.router.Active().(screen.ScoreProvider); ok {
		m.score, m.asked = sp.Score()
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, active screen and footer as one frame.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.score, m.asked, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Machine == nil {
		return fmt.Errorf("app: no session machine")
	}
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
