package splitapi

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"splitsnap/internal/model"
)

func TestBuildExpensePayload_Equal(t *testing.T) {
	p := BuildExpensePayload(ExpenseForm{
		Title:    "Dinner",
		Amount:   500,
		Payer:    "Alice",
		Category: "Dining",
		Split:    model.SplitEqual,
	})

	if p.Splits != nil || p.Items != nil {
		t.Errorf("equal split must carry no extra fields: %+v", p)
	}
	if p.SplitType != "equal" {
		t.Errorf("SplitType = %q, want equal", p.SplitType)
	}
}

func TestBuildExpensePayload_PercentageRawStrings(t *testing.T) {
	// No client-side sum validation: 60+40 and 70+70 both pass through.
	p := BuildExpensePayload(ExpenseForm{
		Title:  "Hotel",
		Amount: 2000,
		Payer:  "Alice",
		Split:  model.SplitPercentage,
		Splits: map[string]string{"Alice": "60", "Bob": "40"},
	})

	want := map[string]string{"Alice": "60", "Bob": "40"}
	if !reflect.DeepEqual(p.Splits, want) {
		t.Errorf("Splits = %v, want %v", p.Splits, want)
	}

	p = BuildExpensePayload(ExpenseForm{
		Split:  model.SplitPercentage,
		Splits: map[string]string{"Alice": "70", "Bob": "70"},
	})
	if p.Splits["Alice"] != "70" || p.Splits["Bob"] != "70" {
		t.Errorf("over-100 splits must pass through: %v", p.Splits)
	}
}

func TestBuildExpensePayload_RatioKeepsGarbage(t *testing.T) {
	// Total function: unparseable entries are the server's problem.
	p := BuildExpensePayload(ExpenseForm{
		Split:  model.SplitRatio,
		Splits: map[string]string{"Alice": "2", "Bob": "banana"},
	})
	if p.Splits["Bob"] != "banana" {
		t.Errorf("raw entry rewritten: %v", p.Splits)
	}
}

func TestBuildExpensePayload_ItemizedOrderAndNames(t *testing.T) {
	p := BuildExpensePayload(ExpenseForm{
		Split: model.SplitItemized,
		Items: []model.Item{
			{Price: "120", Consumers: []string{"Alice", "Bob"}},
			{Name: "dessert", Price: "80", Consumers: []string{"Bob"}},
		},
	})

	if len(p.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(p.Items))
	}
	if p.Items[0].Price != "120" || p.Items[1].Price != "80" {
		t.Errorf("item order not preserved: %+v", p.Items)
	}

	// Unnamed items must omit the name key entirely.
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"name":""`) {
		t.Errorf("blank item name serialized: %s", data)
	}
	if !strings.Contains(string(data), `"name":"dessert"`) {
		t.Errorf("named item lost its name: %s", data)
	}
}

func TestApplySurcharge(t *testing.T) {
	tests := []struct {
		amount, gst, tip, want float64
	}{
		{1000, 5, 10, 1150},
		{99.99, 5, 10, 114.99}, // 99.99*1.15 = 114.9885 -> 114.99
		{500, 0, 0, 500},
	}
	for _, tt := range tests {
		if got := ApplySurcharge(tt.amount, tt.gst, tt.tip); got != tt.want {
			t.Errorf("ApplySurcharge(%v, %v, %v) = %v, want %v",
				tt.amount, tt.gst, tt.tip, got, tt.want)
		}
	}
}
