package components

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

const bannerArt = ` ███╗   ██╗ █████╗ ███████╗██╗   ██╗██╗███████╗
 ████╗  ██║██╔══██╗██╔════╝██║   ██║██║██╔════╝
 ██╔██╗ ██║███████║█████╗  ██║   ██║██║███████╗
 ██║╚██╗██║██╔══██║██╔══╝  ╚██╗ ██╔╝██║╚════██║
 ██║ ╚████║██║  ██║███████╗ ╚████╔╝ ██║███████║
 ╚═╝  ╚═══╝╚═╝  ╚═╝╚══════╝  ╚═══╝  ╚═╝╚══════╝`

// BannerCompact is the one-line banner for narrow terminals.
const BannerCompact = "N A E V I S"

// BannerWidth is the column count of the block-letter banner.
var BannerWidth = lipgloss.Width(bannerArt)

// Banner renders the NAEVIS logo in fg, falling back to BannerCompact
// when compact is set.
func Banner(fg color.Color, compact bool) string {
	style := lipgloss.NewStyle().Foreground(fg).Bold(true)
	if compact {
		return style.Render(BannerCompact)
	}
	return style.Render(bannerArt)
}
