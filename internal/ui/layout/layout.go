package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// Smallest terminal the arcade cabinet fits in.
const (
	MinWidth  = 80
	MinHeight = 24
)

const appName = "Naevis Asks"

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nNaevis needs at least %d x %d.\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	body := lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(max(width-2, 0)).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
}

// RenderHeader shows the app name on the left, the screen title in the
// middle and the running score on the right.
func RenderHeader(title string, score, asked int, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(appName)
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(fmt.Sprintf("★ %d pts", score)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("Q %d", asked))

	// Border and padding take four columns.
	inner := max(width-4, 0)
	side := max((inner-lipgloss.Width(mid))/2, 0)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, left),
		mid,
		lipgloss.PlaceHorizontal(max(inner-side-lipgloss.Width(mid), 0), lipgloss.Right, right),
	)
	return bar(width).Render(row)
}

// RenderFooter lists key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render(strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, sizing the content to
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).MaxHeight(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
