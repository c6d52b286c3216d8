// Package render turns a fetched balance sheet into view models. It is the
// only place settlement instructions, signed balances, and chart buckets
// are shaped for display; presentation layers (CLI tables, TUI tabs) render
// these structures without re-deriving anything.
package render

import (
	"sort"

	"splitsnap/internal/model"
	"splitsnap/internal/pay"
	"splitsnap/internal/pipeline"
)

// Builder carries the display and payment settings view models depend on.
type Builder struct {
	CurrencySymbol string
	UPI            pay.UPIOptions
}

// Settlements builds one view per settlement instruction, preserving the
// server's order. Instructions with unparseable amounts are kept — they
// render with the raw value and simply can't feed aggregate sums.
func (b Builder) Settlements(settlements []model.Settlement) []model.SettlementView {
	views := make([]model.SettlementView, 0, len(settlements))
	for _, s := range settlements {
		amt := s.Amount.Display()
		views = append(views, model.SettlementView{
			From:   s.From,
			To:     s.To,
			Amount: s.Amount,
			NagURL: pay.ReminderLink(s.From, b.CurrencySymbol, amt),
			PayURL: pay.UPILink(b.UPI, s.To, amt),
			Raw:    s.Raw,
		})
	}
	return views
}

// Balances builds signed balance views sorted by member name for stable
// output. Zero is styled positive.
func (b Builder) Balances(balances map[string]model.Amount) []model.BalanceView {
	views := make([]model.BalanceView, 0, len(balances))
	for member, amt := range balances {
		views = append(views, model.BalanceView{
			Member:    member,
			Positive:  !amt.Negative(),
			Magnitude: amt.Magnitude(),
			Display:   amt.Display(),
			Avatar:    pay.AvatarURL(member),
		})
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].Member < views[j].Member
	})
	return views
}

// Dashboard assembles the full render state from one fetch: settlement
// views, balance views, chart buckets, and the all-settled signal.
func (b Builder) Dashboard(sheet model.BalanceSheet) model.Dashboard {
	totals := pipeline.CategoryTotals(sheet.Expenses)
	return model.Dashboard{
		Settlements: b.Settlements(sheet.Settlements),
		Balances:    b.Balances(sheet.Balances),
		Categories:  pipeline.SortedCategories(totals),
		TotalSpend:  pipeline.TotalSpend(sheet.Expenses),
		AllSettled:  sheet.Settled(),
	}
}
