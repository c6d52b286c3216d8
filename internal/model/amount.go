// Package model defines domain types for splitsnap groups, expenses, and balances.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a money value as received from the balance service.
// The service emits amounts as JSON numbers or numeric strings depending
// on which split path produced them, so the raw text is kept alongside
// the parsed value and display falls back to it when parsing fails.
type Amount struct {
	Raw   string
	Value float64
	Valid bool
}

// Amt builds a valid Amount from a float. Used for locally constructed values.
func Amt(v float64) Amount {
	return Amount{Raw: strconv.FormatFloat(v, 'f', -1, 64), Value: v, Valid: true}
}

// ParseAmount parses an amount from raw text, tolerating currency noise.
// An unparseable value is kept verbatim with Valid=false.
func ParseAmount(s string) Amount {
	trimmed := strings.TrimSpace(s)
	cleaned := strings.ReplaceAll(trimmed, ",", "")
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return Amount{Raw: trimmed, Value: v, Valid: true}
	}
	return Amount{Raw: trimmed}
}

// UnmarshalJSON accepts a JSON number, a numeric string, or anything else
// (kept raw, marked invalid). It never fails: a malformed amount still
// renders, it just cannot participate in sums.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount{Raw: string(data), Value: f, Valid: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ParseAmount(s)
		return nil
	}

	*a = Amount{Raw: string(data)}
	return nil
}

// Magnitude returns abs(value) rounded to two decimals.
func (a Amount) Magnitude() float64 {
	return math.Round(math.Abs(a.Value)*100) / 100
}

// Negative reports whether the amount is strictly below zero.
// Zero counts as non-negative.
func (a Amount) Negative() bool {
	return a.Valid && a.Value < 0
}

// Display returns the two-decimal form, or the raw text when unparseable.
func (a Amount) Display() string {
	if !a.Valid {
		return a.Raw
	}
	return fmt.Sprintf("%.2f", a.Magnitude())
}

func (a Amount) String() string {
	return a.Display()
}
