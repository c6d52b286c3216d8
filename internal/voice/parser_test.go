package voice

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	members := []string{"Alice", "Bob"}

	tests := []struct {
		name       string
		transcript string
		want       Fields
	}{
		{
			"title amount payer",
			"Dinner 500 Alice",
			Fields{Title: "Dinner", Amount: "500", Payer: "Alice"},
		},
		{
			"amount only gets placeholder title",
			"500",
			Fields{Title: PlaceholderTitle, Amount: "500"},
		},
		{
			"multi word title",
			"late night snacks 250 bob",
			Fields{Title: "late night snacks", Amount: "250", Payer: "Bob"},
		},
		{
			"payer match is case insensitive",
			"Chai 40 ALICE",
			Fields{Title: "Chai", Amount: "40", Payer: "Alice"},
		},
		{
			"unknown last token leaves payer unset",
			"Dinner 500 tonight",
			Fields{Title: "Dinner", Amount: "500"},
		},
		{
			"first numeric token wins",
			"room 420 split 500 Bob",
			Fields{Title: "room", Amount: "420", Payer: "Bob"},
		},
		{
			"decimal amount",
			"Coffee 99.50",
			Fields{Title: "Coffee", Amount: "99.50"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.transcript, members)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestParse_NoNumericToken(t *testing.T) {
	_, err := Parse("Dinner Alice", []string{"Alice"})
	if !errors.Is(err, ErrNoAmount) {
		t.Fatalf("err = %v, want ErrNoAmount", err)
	}
}

func TestParse_EmptyTranscript(t *testing.T) {
	_, err := Parse("", nil)
	if !errors.Is(err, ErrNoAmount) {
		t.Fatalf("err = %v, want ErrNoAmount", err)
	}
}
