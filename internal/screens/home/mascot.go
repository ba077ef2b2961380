package home

import (
	"charm.land/lipgloss/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: last answer was right
	MascotSmug                             // Orange, smirk: last answer was wrong
)

const mascotIdle = `┌─────┐
│ ◕ ◕ │
│  ◡  │
│ ? ! │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ? ! │
└─╥═╥─┘
  ╚═╝`

const mascotSmug = `┌─────┐
│ ¬ ¬ │ ha
│  ‿  │
│ ? ! │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotSmug:
		art = mascotSmug
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// mascotFor picks the variant from the last verdict, if any.
func mascotFor(lastCorrect *bool) MascotVariant {
	switch {
	case lastCorrect == nil:
		return MascotIdle
	case *lastCorrect:
		return MascotCelebrating
	default:
		return MascotSmug
	}
}
