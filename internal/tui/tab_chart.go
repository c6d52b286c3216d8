package tui

import (
	"fmt"

	"splitsnap/internal/cli"
	"splitsnap/internal/tui/components"
	"splitsnap/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderChartTab(cw int) string {
	t := theme.Active
	d := a.dashboard

	if len(d.Categories) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		return components.ContentCard("", muted.Render("Nothing spent yet, nothing to chart."), cw)
	}

	format := func(v float64) string {
		return fmt.Sprintf("%10s", cli.FormatFloat(a.cfg.Currency.Symbol, v))
	}
	bars := components.CategoryBars(d.Categories, d.TotalSpend, components.CardInnerWidth(cw), format)
	out := components.ContentCard("Spending by Category", bars, cw)

	// Expense amounts in entry order as a quick trend glance
	var trail []float64
	for _, e := range a.sheet.Expenses {
		if e.Amount.Valid {
			trail = append(trail, e.Amount.Value)
		}
	}
	if len(trail) > 1 {
		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		body := components.Sparkline(trail, t.Accent) + "\n" +
			mutedStyle.Render(fmt.Sprintf("%d expenses, %s total",
				len(trail), cli.FormatFloat(a.cfg.Currency.Symbol, d.TotalSpend)))
		out += "\n" + components.ContentCard("Spend Trail", body, cw)
	}

	return out
}
