package session

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
	sess "github.com/phoebegrace/NoFilterNaevis/internal/session"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// renderQuestionView renders the question, the answer box and, once
// checked, the verdict and Naevis's comment.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	snap := s.snap
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if !snap.HasQuestion {
		if s.busy {
			b.WriteString(centered(width, theme.TextDim).Render("Naevis is thinking of a question..."))
		}
		if s.errMsg != "" {
			b.WriteString(centered(width, theme.Error).Render(s.errMsg))
		}
		return b.String()
	}

	textWidth := min(width-8, 70)

	b.WriteString(centered(width, theme.Secondary).Bold(true).Render("Question:"))
	b.WriteString("\n")
	question := lipgloss.NewStyle().
		Width(textWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(snap.Question)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n")

	if snap.Degraded {
		b.WriteString(centered(width, theme.TextDim).Italic(true).
			Render("(Naevis mumbled this one. There is no hint and the answer can't be checked reliably.)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.showHint {
		hint := lipgloss.NewStyle().
			Width(textWidth).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeCyan).
			Render("Hint: " + snap.Hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))
	b.WriteString("\n\n")

	if snap.Checked {
		b.WriteString(renderVerdict(snap, width, textWidth))
	}

	if s.busy {
		label := "Checking your answer..."
		if snap.Phase == sess.PhaseAnswered {
			label = "Naevis is thinking of the next question..."
		}
		b.WriteString(centered(width, theme.TextDim).Render(label))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString(centered(width, theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SessionScreen) renderInfoLine(width int) string {
	snap := s.snap
	topic, difficulty := snap.SelectedTopic, snap.SelectedDifficulty
	if snap.HasQuestion {
		topic, difficulty = snap.Topic, snap.Difficulty
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic: %s", topic))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s (%d pts)  %s %d/%d",
			difficulty,
			quiz.PointsFor(difficulty),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✔"),
			snap.NumRight,
			snap.Answered,
		))

	line := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		line += strings.Repeat(" ", rightPad) + infoRight
	}
	return line
}

// renderVerdict renders the checked state: verdict, reference answer on
// a miss, override confirmation and commentary.
func renderVerdict(snap sess.Snapshot, width, textWidth int) string {
	var b strings.Builder

	if snap.Correct != nil && *snap.Correct {
		b.WriteString(centered(width, theme.Success).Bold(true).Render("Correct!"))
	} else {
		b.WriteString(centered(width, theme.Error).Bold(true).
			Render(fmt.Sprintf("Incorrect! The correct answer was: %s", snap.Answer)))
	}
	b.WriteString("\n")

	if snap.Overridden {
		b.WriteString(centered(width, theme.Success).
			Render(fmt.Sprintf("You confirmed your answer as correct! +%d", quiz.PointsFor(snap.Difficulty))))
		b.WriteString("\n")
	}

	if snap.Commentary != "" {
		comment := theme.Commentary.
			Width(textWidth).
			Align(lipgloss.Center).
			Render("Naevis: " + snap.Commentary)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, comment))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(centered(width, theme.Text).Bold(true).Render("End the quiz?"))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.TextDim).Render("You'll see your final score."))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Success).Render("[Y] Yes, end the quiz"))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Primary).Render("[N] No, keep going"))

	return b.String()
}

func centered(width int, fg color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg)
}
