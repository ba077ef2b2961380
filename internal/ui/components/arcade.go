package components

import (
	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// Bounds for the shared column every arcade box is drawn in.
const (
	minContentWidth = 20
	maxContentWidth = 60
	cabinetChrome   = 6 // double border plus inner padding
)

// ContentWidth is the column width for cards and buttons inside a
// cabinet of frameWidth, so that stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetChrome, minContentWidth), maxContentWidth)
}

// CabinetFrame draws the double-bordered cabinet and centers content in it.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard boxes content at column width cw.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(max(cw-2, 0)).
		Align(lipgloss.Center).
		Render(content)
}

var (
	buttonBase = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	buttonIdle = buttonBase.
			Foreground(theme.Text).
			BorderForeground(theme.Border)

	buttonLit = buttonBase.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)
)

// ArcadeButton draws a menu button; the selected one is lit and marked.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return buttonLit.Width(width).Render("▸ " + label)
	}
	return buttonIdle.Width(width).Render(label)
}
