package tui

import (
	"fmt"
	"strings"

	"splitsnap/internal/tui/components"
	"splitsnap/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBalancesTab(cw int) string {
	t := theme.Active
	views := a.dashboard.Balances

	if len(views) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		return components.ContentCard("", muted.Render("No balances yet. Add an expense with [a]."), cw)
	}

	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Bars scale against the largest magnitude.
	maxMag := 0.0
	for _, v := range views {
		if v.Magnitude > maxMag {
			maxMag = v.Magnitude
		}
	}

	barW := cw - 40
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, v := range views {
		filled := 0
		if maxMag > 0 {
			filled = int(v.Magnitude / maxMag * float64(barW))
		}
		if filled > barW {
			filled = barW
		}

		style := posStyle
		sign := "+"
		if !v.Positive {
			style = negStyle
			sign = "-"
		}

		bar := style.Render(strings.Repeat("█", filled)) +
			dimStyle.Render(strings.Repeat("░", barW-filled))

		fmt.Fprintf(&b, "%s %s %s",
			nameStyle.Render(fmt.Sprintf("%-14s", truncStr(v.Member, 14))),
			bar,
			style.Render(fmt.Sprintf("%s%s%s", sign, a.cfg.Currency.Symbol, v.Display)),
		)
		if i < len(views)-1 {
			b.WriteString("\n")
		}
	}

	out := components.ContentCard("Net Balances", b.String(), cw)
	legend := dimStyle.Render("  green collects, red owes · zero counts as settled")
	return out + "\n" + legend
}
