package pipeline

import "errors"

// ErrNoExpenses means the roast has nothing to work with yet.
var ErrNoExpenses = errors.New("pipeline: add expenses first")

// Roast classifications, checked in order.
const (
	RoastFood      = "You guys eat out too much. Do you even have kitchens? 🍔"
	RoastOverspend = "Spending like billionaires, earning like students? 💸"
	RoastBoring    = "This group is too boring. Spend more money! 😴"
)

const (
	diningCategory   = "Dining"
	diningShareLimit = 0.6
	overspendLimit   = 10000
)

// RoastGroup picks one of three fixed messages from the expense cache.
// Dining share is checked first, then total spend; a zero total skips
// straight to the boredom message so there is never a divide by zero.
func RoastGroup(totals map[string]float64, totalSpend float64) string {
	if totalSpend > 0 && totals[diningCategory]/totalSpend > diningShareLimit {
		return RoastFood
	}
	if totalSpend > overspendLimit {
		return RoastOverspend
	}
	return RoastBoring
}

// Roast aggregates and classifies in one step. Fails on an empty cache so
// callers surface the "add expenses first" condition instead of a verdict.
func Roast(expenseCount int, totals map[string]float64, totalSpend float64) (string, error) {
	if expenseCount == 0 {
		return "", ErrNoExpenses
	}
	return RoastGroup(totals, totalSpend), nil
}
