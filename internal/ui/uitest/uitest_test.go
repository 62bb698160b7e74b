package uitest

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestPlain_JoinsWrappedStyledText(t *testing.T) {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(lipgloss.Color("#4F46E5")).
		Width(16).
		Render("This action cannot be undone")

	assert.Contains(t, Plain(card), "This action cannot be undone")
}

func TestPlain_KeepsPlainText(t *testing.T) {
	assert.Equal(t, "▸ Insights", Plain("  ▸ Insights\n"))
}
