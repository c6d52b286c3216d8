package splitapi

import (
	"encoding/json"
	"testing"
)

func TestWireTransaction_ObjectForms(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		from, to     string
		amount       float64
	}{
		{"from/to", `{"from":"Alice","to":"Bob","amount":50}`, "Alice", "Bob", 50},
		{"debtor/creditor", `{"debtor":"Alice","creditor":"Bob","amount":50}`, "Alice", "Bob", 50},
		{"from/to wins", `{"from":"Carol","to":"Dan","debtor":"Alice","creditor":"Bob","amount":12}`, "Carol", "Dan", 12},
		{"string amount", `{"from":"Alice","to":"Bob","amount":"75.50"}`, "Alice", "Bob", 75.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w wireTransaction
			if err := json.Unmarshal([]byte(tt.in), &w); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if w.From != tt.from || w.To != tt.to {
				t.Errorf("parties = %q -> %q, want %q -> %q", w.From, w.To, tt.from, tt.to)
			}
			if !w.Amount.Valid || w.Amount.Value != tt.amount {
				t.Errorf("amount = %+v, want %v", w.Amount, tt.amount)
			}
		})
	}
}

func TestWireTransaction_StringForm(t *testing.T) {
	var w wireTransaction
	if err := json.Unmarshal([]byte(`"Alice pays Bob: ₹50"`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.From != "Alice" || w.To != "Bob" {
		t.Errorf("parties = %q -> %q, want Alice -> Bob", w.From, w.To)
	}
	if !w.Amount.Valid || w.Amount.Value != 50 {
		t.Errorf("amount = %+v, want 50", w.Amount)
	}
}

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		in       string
		from, to string
		amount   float64
		parsed   bool
	}{
		{"Alice pays Bob: ₹50", "Alice", "Bob", 50, true},
		{"Alice pays Bob: 50", "Alice", "Bob", 50, true},
		{"Alice pays Bob: Rs. 120.75", "Alice", "Bob", 120.75, true},
		{"Big Al pays Bob: ₹9", "Big Al", "Bob", 9, true},
		{"no colon here", "", "", 0, false},
		{"Alice owes Bob: 50", "", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := parseInstruction(tt.in)
			if s.Raw != tt.in {
				t.Errorf("Raw = %q, want original text kept", s.Raw)
			}
			if !tt.parsed {
				if s.From != "" || s.To != "" {
					t.Errorf("unparseable instruction grew parties: %+v", s)
				}
				return
			}
			if s.From != tt.from || s.To != tt.to {
				t.Errorf("parties = %q -> %q, want %q -> %q", s.From, s.To, tt.from, tt.to)
			}
			if !s.Amount.Valid || s.Amount.Value != tt.amount {
				t.Errorf("amount = %+v, want %v", s.Amount, tt.amount)
			}
		})
	}
}

// FuzzWireTransaction checks the decoder never panics or errors on
// arbitrary JSON values a creative server might emit in place of a
// transaction object.
func FuzzWireTransaction(f *testing.F) {
	f.Add(`{"from":"A","to":"B","amount":1}`)
	f.Add(`"A pays B: ₹50"`)
	f.Add(`"garbage"`)
	f.Add(`{"amount":"not a number"}`)
	f.Add(`42`)
	f.Fuzz(func(t *testing.T, raw string) {
		if !json.Valid([]byte(raw)) {
			t.Skip()
		}
		var w wireTransaction
		if err := json.Unmarshal([]byte(raw), &w); err != nil {
			t.Errorf("decoder must tolerate any valid JSON, got error on %q: %v", raw, err)
		}
	})
}
