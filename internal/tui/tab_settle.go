package tui

import (
	"fmt"
	"strings"

	"splitsnap/internal/cli"
	"splitsnap/internal/tui/components"
	"splitsnap/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSettleTab(cw int) string {
	t := theme.Active
	views := a.dashboard.Settlements

	if len(views) == 0 {
		celebrate := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		body := celebrate.Render("🎉 All settled up!") + "\n" +
			muted.Render("Nobody owes anybody. Enjoy it while it lasts.")
		return components.ContentCard("", body, cw)
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.Amber).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var list strings.Builder
	for i, v := range views {
		line := fmt.Sprintf(" %d. %-30s %10s ",
			i+1, truncStr(v.Title(), 30),
			cli.FormatMoney(a.cfg.Currency.Symbol, v.Amount))
		if i == a.settleCursor {
			list.WriteString(selStyle.Render("▶" + line))
		} else {
			list.WriteString(rowStyle.Render(" " + line))
		}
		if i < len(views)-1 {
			list.WriteString("\n")
		}
	}
	out := components.ContentCard("Who Pays Whom", list.String(), cw)

	// Detail card for the selected instruction: payment link and nag link
	if a.settleCursor < len(views) {
		v := views[a.settleCursor]
		var b strings.Builder
		b.WriteString(amtStyle.Render(cli.FormatMoney(a.cfg.Currency.Symbol, v.Amount)))
		b.WriteString(mutedStyle.Render("  " + v.Title()))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("Pay:  "))
		b.WriteString(rowStyle.Render(truncStr(v.PayURL, components.CardInnerWidth(cw)-6)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Nag:  "))
		b.WriteString(rowStyle.Render(truncStr(v.NagURL, components.CardInnerWidth(cw)-6)))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("Enter/p marks it paid locally; `splitsnap settle` prints a QR."))
		out += "\n" + components.ContentCard("Selected", b.String(), cw)
	}

	return out
}
