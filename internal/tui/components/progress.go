package components

import (
	"fmt"

	"splitsnap/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders one labeled category bar colored from the theme's
// chart cycle by index.
func ShareBar(index int, label, value string, share float64, labelW, barW int) string {
	t := theme.Active

	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}

	palette := t.Chart()
	color := palette[index%len(palette)]

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	pctStyle := lipgloss.NewStyle().Foreground(color)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(share) +
		" " + valueStyle.Render(value) +
		" " + pctStyle.Render(fmt.Sprintf("%4.1f%%", share*100))
}
