// Package pipeline computes chart buckets and spend heuristics from the
// cached expense list. Everything here is pure: the same expenses in any
// order produce the same result.
package pipeline

import (
	"sort"

	"splitsnap/internal/model"
)

// CategoryTotals sums expense amounts per category label. Labels are taken
// verbatim — no case folding, no "Uncategorized" default beyond whatever
// the service already supplied. Amounts that fail to parse contribute zero.
func CategoryTotals(expenses []model.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		if !e.Amount.Valid {
			totals[e.Category] += 0
			continue
		}
		totals[e.Category] += e.Amount.Value
	}
	return totals
}

// TotalSpend sums all parseable expense amounts.
func TotalSpend(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.Amount.Valid {
			total += e.Amount.Value
		}
	}
	return total
}

// SortedCategories converts a totals map into chart buckets sorted by
// total descending, ties broken by label so output is stable.
func SortedCategories(totals map[string]float64) []model.CategoryTotal {
	buckets := make([]model.CategoryTotal, 0, len(totals))
	for label, total := range totals {
		buckets = append(buckets, model.CategoryTotal{Category: label, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Total != buckets[j].Total {
			return buckets[i].Total > buckets[j].Total
		}
		return buckets[i].Category < buckets[j].Category
	})
	return buckets
}

// PayerTotals sums expense amounts per payer, for the overview tab.
func PayerTotals(expenses []model.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		if e.Amount.Valid {
			totals[e.Payer] += e.Amount.Value
		}
	}
	return totals
}
