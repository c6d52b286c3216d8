package store

import (
	"path/filepath"
	"testing"

	"splitsnap/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGroupRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.LoadGroup(); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v, want no group", ok, err)
	}

	g := model.Group{Name: "Goa Trip", Members: []string{"Alice", "Bob", "Carol"}}
	if err := s.SaveGroup(g); err != nil {
		t.Fatalf("SaveGroup: %v", err)
	}

	got, ok, err := s.LoadGroup()
	if err != nil || !ok {
		t.Fatalf("LoadGroup: ok=%v err=%v", ok, err)
	}
	if got.Name != g.Name || len(got.Members) != 3 || got.Members[2] != "Carol" {
		t.Errorf("LoadGroup = %+v, want %+v", got, g)
	}
}

func TestSaveGroupClearsSheet(t *testing.T) {
	s := openTestStore(t)

	sheet := model.BalanceSheet{
		Settlements: []model.Settlement{{From: "Bob", To: "Alice", Amount: model.Amt(50)}},
	}
	if err := s.SaveSheet(sheet); err != nil {
		t.Fatalf("SaveSheet: %v", err)
	}
	if err := s.SaveGroup(model.Group{Name: "New", Members: []string{"Dan"}}); err != nil {
		t.Fatalf("SaveGroup: %v", err)
	}

	got, err := s.LoadSheet()
	if err != nil {
		t.Fatalf("LoadSheet: %v", err)
	}
	if !got.Settled() {
		t.Errorf("new group kept stale settlements: %+v", got.Settlements)
	}
}

func TestSheetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	sheet := model.BalanceSheet{
		Expenses: []model.Expense{
			{Title: "Dinner", Amount: model.Amt(500), Payer: "Alice", Category: "Dining", Split: model.SplitEqual},
			{Title: "Mystery", Amount: model.ParseAmount("oops"), Payer: "Bob", Category: "Misc", Split: model.SplitRatio},
		},
		Settlements: []model.Settlement{
			{From: "Bob", To: "Alice", Amount: model.Amt(139.75)},
			{From: "Carol", To: "Alice", Amount: model.Amt(50), Raw: "Carol pays Alice: ₹50"},
		},
		Balances: map[string]model.Amount{
			"Alice": model.Amt(189.75),
			"Bob":   model.Amt(-139.75),
		},
	}
	if err := s.SaveSheet(sheet); err != nil {
		t.Fatalf("SaveSheet: %v", err)
	}

	got, err := s.LoadSheet()
	if err != nil {
		t.Fatalf("LoadSheet: %v", err)
	}

	if len(got.Expenses) != 2 || got.Expenses[0].Title != "Dinner" {
		t.Fatalf("expenses = %+v", got.Expenses)
	}
	if got.Expenses[0].Amount.Value != 500 || !got.Expenses[0].Amount.Valid {
		t.Errorf("amount lost: %+v", got.Expenses[0].Amount)
	}
	if got.Expenses[1].Amount.Valid || got.Expenses[1].Amount.Raw != "oops" {
		t.Errorf("invalid amount must stay raw: %+v", got.Expenses[1].Amount)
	}

	if len(got.Settlements) != 2 || got.Settlements[1].Raw != "Carol pays Alice: ₹50" {
		t.Fatalf("settlements = %+v", got.Settlements)
	}
	if got.Settlements[0].Amount.Value != 139.75 {
		t.Errorf("settlement amount = %+v", got.Settlements[0].Amount)
	}

	if b := got.Balances["Bob"]; !b.Negative() || b.Magnitude() != 139.75 {
		t.Errorf("Bob balance = %+v", b)
	}
}

func TestSaveSheetReplacesWholesale(t *testing.T) {
	s := openTestStore(t)

	first := model.BalanceSheet{
		Expenses: []model.Expense{{Title: "Old", Amount: model.Amt(1)}},
	}
	if err := s.SaveSheet(first); err != nil {
		t.Fatal(err)
	}
	second := model.BalanceSheet{
		Expenses: []model.Expense{{Title: "New", Amount: model.Amt(2)}},
	}
	if err := s.SaveSheet(second); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadSheet()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].Title != "New" {
		t.Errorf("sheet not replaced: %+v", got.Expenses)
	}
}

func TestDropSettlement(t *testing.T) {
	s := openTestStore(t)

	sheet := model.BalanceSheet{
		Settlements: []model.Settlement{
			{From: "Bob", To: "Alice", Amount: model.Amt(50)},
			{From: "Carol", To: "Alice", Amount: model.Amt(25)},
		},
	}
	if err := s.SaveSheet(sheet); err != nil {
		t.Fatal(err)
	}
	if err := s.DropSettlement(0); err != nil {
		t.Fatalf("DropSettlement: %v", err)
	}

	got, err := s.LoadSheet()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Settlements) != 1 || got.Settlements[0].From != "Carol" {
		t.Errorf("settlements = %+v", got.Settlements)
	}
}

func TestDropSettlementConsecutive(t *testing.T) {
	s := openTestStore(t)

	sheet := model.BalanceSheet{
		Settlements: []model.Settlement{
			{From: "Alice", To: "Dev", Amount: model.Amt(100)},
			{From: "Bob", To: "Dev", Amount: model.Amt(200)},
			{From: "Carol", To: "Dev", Amount: model.Amt(300)},
		},
	}
	if err := s.SaveSheet(sheet); err != nil {
		t.Fatal(err)
	}

	// Marking the top of the list paid twice in a row must remove the
	// first two settlements, not delete one and no-op on a stale position.
	if err := s.DropSettlement(0); err != nil {
		t.Fatalf("first drop: %v", err)
	}
	if err := s.DropSettlement(0); err != nil {
		t.Fatalf("second drop: %v", err)
	}

	got, err := s.LoadSheet()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Settlements) != 1 || got.Settlements[0].From != "Carol" {
		t.Errorf("settlements after two drops = %+v, want only Carol's", got.Settlements)
	}
}
