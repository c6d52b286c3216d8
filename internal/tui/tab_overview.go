package tui

import (
	"fmt"
	"strconv"
	"strings"

	"splitsnap/internal/cli"
	"splitsnap/internal/pipeline"
	"splitsnap/internal/tui/components"
	"splitsnap/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	d := a.dashboard

	topCategory := "—"
	if len(d.Categories) > 0 {
		topCategory = d.Categories[0].Category
	}

	open := strconv.Itoa(len(d.Settlements))
	openHint := "settle up in [s]"
	if d.AllSettled {
		open = "0"
		openHint = "all clear 🎉"
	}

	fronterHint := ""
	if payer := topPayer(pipeline.PayerTotals(a.sheet.Expenses)); payer != "" {
		fronterHint = payer + " fronted most"
	}

	cards := []struct{ Label, Value, Hint string }{
		{"Total Spend", cli.FormatFloat(a.cfg.Currency.Symbol, d.TotalSpend), fmt.Sprintf("%d expenses", len(a.sheet.Expenses))},
		{"Open Debts", open, openHint},
		{"Members", strconv.Itoa(len(a.group.Members)), truncStr(strings.Join(a.group.Members, ", "), 24)},
		{"Top Category", topCategory, fronterHint},
	}
	out := components.MetricCardRow(cards, cw)

	// Roast card: the group's spending verdict
	roastBody := "Nothing to roast yet. Add some expenses."
	if len(a.sheet.Expenses) > 0 {
		totals := pipeline.CategoryTotals(a.sheet.Expenses)
		roastBody = pipeline.RoastGroup(totals, d.TotalSpend)
	}
	roastStyle := lipgloss.NewStyle().Foreground(t.Pink).Italic(true)
	out += "\n" + components.ContentCard("Verdict", roastStyle.Render(roastBody), cw)

	// Recent expenses, newest last in server order
	if len(a.sheet.Expenses) > 0 {
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

		recent := a.sheet.Expenses
		if len(recent) > 6 {
			recent = recent[len(recent)-6:]
		}

		var b strings.Builder
		for i := len(recent) - 1; i >= 0; i-- {
			e := recent[i]
			fmt.Fprintf(&b, "%s %s %s\n",
				valueStyle.Render(fmt.Sprintf("%-22s", truncStr(e.Title, 22))),
				valueStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(a.cfg.Currency.Symbol, e.Amount))),
				mutedStyle.Render(fmt.Sprintf("%s · %s", e.Payer, e.Category)),
			)
		}
		out += "\n" + components.ContentCard("Recent Expenses", strings.TrimRight(b.String(), "\n"), cw)
	}

	return out
}

// topPayer picks the member who fronted the most money, ties broken by
// name so the card is stable across renders.
func topPayer(totals map[string]float64) string {
	var best string
	var bestTotal float64
	for payer, total := range totals {
		if total > bestTotal || (total == bestTotal && best != "" && payer < best) {
			best, bestTotal = payer, total
		}
	}
	return best
}
