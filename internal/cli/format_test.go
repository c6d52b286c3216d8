package cli

import (
	"testing"

	"splitsnap/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		a    model.Amount
		want string
	}{
		{"valid", model.Amt(139.75), "₹139.75"},
		{"rounds", model.Amt(33.335), "₹33.34"},
		{"negative shows magnitude", model.Amt(-50), "₹50.00"},
		{"invalid stays raw", model.ParseAmount("oops"), "oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney("₹", tt.a); got != tt.want {
				t.Errorf("FormatMoney = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney("₹", model.Amt(189.75)); got != "+₹189.75" {
		t.Errorf("creditor = %q", got)
	}
	if got := FormatSignedMoney("₹", model.Amt(-139.75)); got != "-₹139.75" {
		t.Errorf("debtor = %q", got)
	}
	// Zero is non-negative and renders with a plus.
	if got := FormatSignedMoney("₹", model.Amt(0)); got != "+₹0.00" {
		t.Errorf("zero = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 14); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("an extremely long expense title", 10); got != "an extrem…" {
		t.Errorf("Truncate long = %q", got)
	}
	// Rune-aware: 7 runes kept plus the ellipsis.
	if got := Truncate("चाय और समोसा", 8); got != "चाय और …" {
		t.Errorf("Truncate runes = %q", got)
	}
}
