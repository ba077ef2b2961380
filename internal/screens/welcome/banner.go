package welcome

import (
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/components"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/theme"
)

// RenderBanner picks the block banner when it fits in width.
func RenderBanner(width int) string {
	return components.Banner(theme.Primary, width < components.BannerWidth+4)
}
