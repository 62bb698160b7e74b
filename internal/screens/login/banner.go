package login

import (
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

const bannerArt = ` ___ _           _      ___          _    _
/ __| |_ _  _ __| |_  _| _ )_  _ __| |__| |_  _
\__ \  _| || / _' | || | _ \ || / _' / _' | || |
|___/\__|\_,_\__,_|\_, |___/\_,_\__,_\__,_|\_, |
                   |__/                     |__/`

const bannerCompact = "S T U D Y B U D D Y"

// bannerMinHeight is the terminal height below which the banner is left
// out so the form stays on screen.
const bannerMinHeight = 32

// renderBanner returns the banner in the primary color, compact below
// 52 columns.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
