package components

import (
	"fmt"

	"splitsnap/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// server and fetch info on the right.
func RenderStatusBar(width int, server, notice string, refreshing bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [a]dd  [r]efresh  [q]uit"
	if notice != "" {
		left = " " + notice
	}

	right := server + " "
	if refreshing {
		right = "fetching… " + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(fmt.Sprintf("%s%*s%s", left, padding, "", right))
}
