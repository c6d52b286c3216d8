package render

import (
	"strings"
	"testing"

	"splitsnap/internal/model"
	"splitsnap/internal/pay"
)

var testBuilder = Builder{
	CurrencySymbol: "₹",
	UPI:            pay.UPIOptions{VPA: "group@upi", CurrencyCode: "INR"},
}

func TestSettlements_EmptyListIsAllSettled(t *testing.T) {
	dash := testBuilder.Dashboard(model.BalanceSheet{})
	if !dash.AllSettled {
		t.Error("expected AllSettled for empty transaction list")
	}
	if len(dash.Settlements) != 0 {
		t.Errorf("got %d settlement views, want 0", len(dash.Settlements))
	}
}

func TestSettlements_PreservesServerOrder(t *testing.T) {
	settlements := []model.Settlement{
		{From: "C", To: "A", Amount: model.Amt(30)},
		{From: "B", To: "A", Amount: model.Amt(20)},
		{From: "D", To: "B", Amount: model.Amt(10)},
	}

	views := testBuilder.Settlements(settlements)
	if len(views) != 3 {
		t.Fatalf("got %d views, want 3", len(views))
	}
	for i, s := range settlements {
		if views[i].From != s.From || views[i].To != s.To {
			t.Errorf("view %d = %s→%s, want %s→%s", i, views[i].From, views[i].To, s.From, s.To)
		}
	}
}

func TestSettlements_Affordances(t *testing.T) {
	views := testBuilder.Settlements([]model.Settlement{
		{From: "Alice", To: "Bob", Amount: model.Amt(50)},
	})

	v := views[0]
	if !strings.Contains(v.NagURL, "wa.me") || !strings.Contains(v.NagURL, "Alice") {
		t.Errorf("NagURL = %q", v.NagURL)
	}
	if !strings.HasPrefix(v.PayURL, "upi://pay?") {
		t.Errorf("PayURL = %q", v.PayURL)
	}
	if !strings.Contains(v.PayURL, "am=50.00") {
		t.Errorf("PayURL amount missing: %q", v.PayURL)
	}
}

func TestSettlements_NonNumericAmountStillRendered(t *testing.T) {
	views := testBuilder.Settlements([]model.Settlement{
		{From: "A", To: "B", Amount: model.ParseAmount("fifty")},
	})

	if len(views) != 1 {
		t.Fatalf("instruction with bad amount dropped")
	}
	if got := views[0].Amount.Display(); got != "fifty" {
		t.Errorf("Display = %q, want raw fallback %q", got, "fifty")
	}
}

func TestBalances_SignAndMagnitude(t *testing.T) {
	views := testBuilder.Balances(map[string]model.Amount{
		"Alice":   model.Amt(33.335),
		"Bob":     model.Amt(-33.335),
		"Charlie": model.Amt(0),
	})

	byName := map[string]model.BalanceView{}
	for _, v := range views {
		byName[v.Member] = v
	}

	if v := byName["Alice"]; !v.Positive || v.Magnitude != 33.34 {
		t.Errorf("Alice = %+v, want positive 33.34", v)
	}
	if v := byName["Bob"]; v.Positive || v.Magnitude != 33.34 {
		t.Errorf("Bob = %+v, want negative 33.34", v)
	}
	// Zero styles positive.
	if v := byName["Charlie"]; !v.Positive || v.Magnitude != 0 {
		t.Errorf("Charlie = %+v, want positive 0", v)
	}
}

func TestBalances_SortedByMember(t *testing.T) {
	views := testBuilder.Balances(map[string]model.Amount{
		"Zed": model.Amt(1), "Amy": model.Amt(2), "Mel": model.Amt(3),
	})
	want := []string{"Amy", "Mel", "Zed"}
	for i, v := range views {
		if v.Member != want[i] {
			t.Fatalf("order = %v..., want %v", v.Member, want)
		}
	}
}

func TestDashboard_CategoriesAndTotal(t *testing.T) {
	sheet := model.BalanceSheet{
		Expenses: []model.Expense{
			{Title: "pizza", Category: "Dining", Amount: model.Amt(700)},
			{Title: "cab", Category: "Travel", Amount: model.Amt(300)},
			{Title: "junk", Category: "Misc", Amount: model.ParseAmount("??")},
		},
		Settlements: []model.Settlement{{From: "A", To: "B", Amount: model.Amt(10)}},
	}

	dash := testBuilder.Dashboard(sheet)
	if dash.AllSettled {
		t.Error("AllSettled with one outstanding settlement")
	}
	if dash.TotalSpend != 1000 {
		t.Errorf("TotalSpend = %v, want 1000 (invalid amount excluded)", dash.TotalSpend)
	}
	if len(dash.Categories) != 3 {
		t.Fatalf("category buckets = %d, want 3", len(dash.Categories))
	}
	if dash.Categories[0].Category != "Dining" || dash.Categories[0].Total != 700 {
		t.Errorf("top bucket = %+v, want Dining 700", dash.Categories[0])
	}
}
