package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/router"
	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
	"github.com/phoebegrace/NoFilterNaevis/internal/session"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/components"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/layout"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// SummaryScreen displays the end-of-session report. Any exit key quits
// the program; the session is already closed.
type SummaryScreen struct {
	summary session.Summary

	// review builds the answer review screen; nil hides it.
	review func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.ScoreProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. review may be nil.
func New(summary session.Summary, review func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, review: review}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) Score() (int, int) {
	return s.summary.Score, s.summary.Asked
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Exit"},
		{Key: "Esc", Description: "Exit"},
	}
	if s.review != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review answers"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		case "r":
			if s.review != nil {
				return s, router.Go(s.review())
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(line(width, theme.Primary, true, "Salamat sa paglalaro!"))
	b.WriteString("\n\n")

	b.WriteString(line(width, theme.ArcadeYellow, true, fmt.Sprintf("Your final score is: %d", sum.Score)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(line(width, theme.TextDim, false, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Questions: %d   Answered: %d\nCorrect: %d   Overrides: %d",
		sum.Asked, sum.Answered, sum.Correct, sum.Overrides)
	card := components.ArcadeCard(lipgloss.NewStyle().Foreground(theme.Text).Render(stats), components.ContentWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if sum.Answered > 0 {
		bar := components.NewMeter("Accuracy", sum.Accuracy(), min(width-8, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(line(width, theme.TextDim, false, verdict(sum)))

	return b.String()
}

// verdict is Naevis's parting line.
func verdict(sum session.Summary) string {
	switch {
	case sum.Answered == 0:
		return "Hindi ka man lang sumagot? Next time ha."
	case sum.Accuracy() >= 0.8:
		return "Grabe, ang galing mo! Certified quiz master."
	case sum.Accuracy() >= 0.5:
		return "Pwede na! Konting review pa."
	}
	return "Okay lang yan, bawi next time!"
}

func line(width int, fg color.Color, bold bool, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Bold(bold).
		Render(text)
}
