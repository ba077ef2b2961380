package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/router"
	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// Animation timeline. The greeting is typed out after the banner drops
// in; the screen then waits for a key.
const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	typingAt     = 1000 * time.Millisecond
	charsPerTick = 4
)

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◕ ◕ │  │
  │  │  ◡  │  │
  │  ├─────┤  │
  │  │ ? ! │  │
  │  └─────┘  │
  ╰───────────╯`

const greeting = "Hello! I'm Naevis, and I'm here to challenge your knowledge.\n" +
	"Pick a topic, choose a difficulty, and let's see how high you can score."

const continueHint = "press any key to continue"

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen plays the intro and then swaps itself for the screen
// built by next.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	frame   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

// Title is empty so the header stays clean during the intro.
func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

// revealEnd is when the last greeting character appears.
func revealEnd() time.Duration {
	ticks := (len([]rune(greeting)) + charsPerTick - 1) / charsPerTick
	return typingAt + time.Duration(ticks)*tickInterval
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.done {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, revealEnd())
		w.frame++
		return w, tick()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, router.Swap(w.next())
	}
	return w, nil
}

// typed returns the part of the greeting visible so far.
func (w *WelcomeScreen) typed() string {
	if w.elapsed < typingAt {
		return ""
	}
	runes := []rune(greeting)
	n := int((w.elapsed-typingAt)/tickInterval) * charsPerTick
	return string(runes[:min(n, len(runes))])
}

func (w *WelcomeScreen) ready() bool {
	return w.elapsed >= revealEnd()
}

func (w *WelcomeScreen) View(width, height int) string {
	parts := []string{w.mascot()}

	if w.elapsed >= bannerAt {
		parts = append(parts, "", RenderBanner(width))
	}
	if text := w.typed(); text != "" {
		lines := strings.SplitN(text, "\n", 2)
		parts = append(parts, "", lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(lines[0]))
		if len(lines) > 1 {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(lines[1]))
		}
	}
	if w.ready() {
		parts = append(parts, "", theme.Hint.Render(continueHint))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// mascot draws Naevis, with twinkling stars once the banner is up.
func (w *WelcomeScreen) mascot() string {
	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.elapsed < bannerAt {
		return art
	}

	a, b := theme.Accent, theme.Secondary
	if w.frame%2 == 1 {
		a, b = b, a
	}
	left := lipgloss.NewStyle().Foreground(a).Render("✦")
	right := lipgloss.NewStyle().Foreground(b).Render("★")

	lines := strings.Split(art, "\n")
	for i := 0; i < len(lines); i += 3 {
		lines[i] = left + "  " + lines[i] + "  " + right
	}
	return strings.Join(lines, "\n")
}
