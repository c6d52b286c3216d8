// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"splitsnap/internal/model"
)

// FormatMoney formats a parsed amount with the currency symbol.
// Unparseable amounts render their raw text untouched.
func FormatMoney(symbol string, a model.Amount) string {
	if !a.Valid {
		return a.Raw
	}
	return symbol + a.Display()
}

// FormatSignedMoney renders a net balance with an explicit sign, so a
// member can see at a glance whether they collect or pay.
// e.g., +₹189.75 for a creditor, -₹139.75 for a debtor.
func FormatSignedMoney(symbol string, a model.Amount) string {
	if !a.Valid {
		return a.Raw
	}
	sign := "+"
	if a.Negative() {
		sign = "-"
	}
	return sign + symbol + a.Display()
}

// FormatFloat formats a float to two decimals with the currency symbol.
func FormatFloat(symbol string, v float64) string {
	return symbol + strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Truncate shortens a string to max runes, appending an ellipsis.
// Long expense titles would otherwise blow out table columns.
func Truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
