package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/router"
	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
	"github.com/phoebegrace/NoFilterNaevis/internal/store"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/layout"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// Loader fetches the answers to review.
type Loader func(ctx context.Context) ([]store.AnswerEvent, error)

type answersLoadedMsg struct {
	Answers []store.AnswerEvent
	Err     error
}

// row is one question with its submission and optional override.
type row struct {
	submit   store.AnswerEvent
	override *store.AnswerEvent
}

func (r row) points() int {
	if r.override != nil {
		return r.override.Points
	}
	return r.submit.Points
}

// HistoryScreen lists every answered question of the session.
type HistoryScreen struct {
	load     Loader
	rows     []row
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(load Loader) *HistoryScreen {
	return &HistoryScreen{
		load:     load,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	load := s.load
	return func() tea.Msg {
		answers, err := load(context.Background())
		return answersLoadedMsg{Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Answer Review"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

// group pairs each override with the submission before it.
func group(answers []store.AnswerEvent) []row {
	var rows []row
	for _, a := range answers {
		if a.Kind == store.AnswerOverride && len(rows) > 0 {
			o := a
			rows[len(rows)-1].override = &o
			continue
		}
		rows = append(rows, row{submit: a})
	}
	return rows
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answersLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = group(msg.Answers)
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, router.Back()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading answers...")
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers this session.")
	}

	textWidth := min(width-8, 90)

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.rows {
		mark, fg := "✗", theme.Error
		switch {
		case r.submit.Correct:
			mark, fg = "✓", theme.Success
		case r.override != nil:
			mark, fg = "★", theme.ArcadeYellow
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		question := r.submit.Question
		if room := textWidth - 24; room > 3 && len([]rune(question)) > room {
			question = string([]rune(question)[:room-3]) + "..."
		}
		text := fmt.Sprintf("%s%s %2d. %s  +%d", prefix, mark, i+1, question, r.points())

		style := lipgloss.NewStyle().Foreground(fg)
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Width(textWidth).Render(text)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.details(r, width, textWidth))
		}
	}

	return b.String()
}

func (s *HistoryScreen) details(r row, width, textWidth int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(textWidth)
	lines := []string{
		fmt.Sprintf("      %s, %s", r.submit.Topic, r.submit.Difficulty),
		"      Q: " + r.submit.Question,
		"      Your answer: " + r.submit.UserAnswer,
		"      Correct answer: " + r.submit.CorrectAnswer,
	}
	if r.override != nil {
		lines = append(lines, "      Confirmed correct by you")
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(l)))
		b.WriteString("\n")
	}
	return b.String()
}
