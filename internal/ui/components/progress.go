package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// Meter is a labelled horizontal gauge for a ratio in [0, 1]. Its color
// moves from rose to gold to green as the ratio rises.
type Meter struct {
	Label string
	Ratio float64
	Width int
}

// NewMeter clamps ratio into [0, 1].
func NewMeter(label string, ratio float64, width int) Meter {
	return Meter{Label: label, Ratio: min(max(ratio, 0), 1), Width: width}
}

const (
	meterFull  = "█"
	meterEmpty = "░"
	minCells   = 4
)

// MeterColor picks the fill color for ratio.
func MeterColor(ratio float64) color.Color {
	switch {
	case ratio >= 0.7:
		return theme.Success
	case ratio >= 0.4:
		return theme.ArcadeYellow
	}
	return theme.Error
}

func (m Meter) View() string {
	label := ""
	if m.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label) + " "
	}
	pct := fmt.Sprintf(" %3d%%", int(m.Ratio*100+0.5))

	cells := max(m.Width-lipgloss.Width(label)-len(pct), minCells)
	filled := int(float64(cells)*m.Ratio + 0.5)

	bar := lipgloss.NewStyle().Foreground(MeterColor(m.Ratio)).Render(strings.Repeat(meterFull, filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(meterEmpty, cells-filled))
	return label + bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(pct)
}
