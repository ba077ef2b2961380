package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/ui/components"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

const titleSuffix = "  ·  A S K S"

// renderTitle draws the logo in score gold.
func renderTitle(cw int, compact bool) string {
	title := components.Banner(theme.ArcadeYellow, compact)
	if compact {
		title += lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(titleSuffix)
	}
	return centered(cw, title)
}

// renderStatsBar renders the running score and current selection in a
// bordered box matching content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	rightStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	pickStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			scoreStyle.Render(fmt.Sprintf("★%d", st.score)),
			rightStyle.Render(fmt.Sprintf("✔%d/%d", st.correct, st.answered)),
			pickStyle.Render(fmt.Sprintf("%s·%s", st.topic, st.difficulty)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			scoreStyle.Render(fmt.Sprintf("★ %d PTS", st.score)),
			rightStyle.Render(fmt.Sprintf("✔ %d/%d", st.correct, st.answered)),
			pickStyle.Render(fmt.Sprintf("%s · %s", strings.ToUpper(st.topic), strings.ToUpper(st.difficulty))),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, buttonWidth)
	}

	return centered(cw, strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no
// borders). Long lists like the topic menu always use it.
func renderArcadeMenuCompact(heading string, items []string, selected int, cw int) string {
	lit := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
	idle := lipgloss.NewStyle().Foreground(theme.Text)

	lines := []string{lipgloss.NewStyle().Foreground(theme.TextDim).Render(heading), ""}
	for i, label := range items {
		// Numbered so the digit shortcuts are discoverable.
		label = fmt.Sprintf("%d. %s", i+1, label)
		if i == selected {
			lines = append(lines, lit.Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, idle.Render("   "+label))
		}
	}

	return centered(cw, strings.Join(lines, "\n"))
}

func centered(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

// renderOfflineBanner notes that questions come from the built-in bank.
func renderOfflineBanner(cw int) string {
	return centered(cw, lipgloss.NewStyle().Foreground(theme.Accent).
		Render("⚠ Offline mode: no LLM key set, using the built-in question bank"))
}

func renderError(msg string, cw int) string {
	return centered(cw, lipgloss.NewStyle().Foreground(theme.Error).Render(msg))
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return centered(cw, RenderMascot(variant))
}
