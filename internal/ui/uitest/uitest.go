// Package uitest helps tests assert on rendered terminal output.
package uitest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var borders = strings.NewReplacer(
	"│", " ", "─", " ", "╭", " ", "╮", " ", "╰", " ", "╯", " ",
	"┌", " ", "┐", " ", "└", " ", "┘", " ", "┃", " ", "━", " ",
	"┏", " ", "┓", " ", "┗", " ", "┛", " ",
)

// Plain strips styling and box borders from rendered output and joins
// every run of whitespace into one space, so text that lipgloss wrapped
// across lines or styled rune by rune can be matched as a phrase.
func Plain(rendered string) string {
	s := borders.Replace(ansi.Strip(rendered))
	return strings.Join(strings.Fields(s), " ")
}
