package daemon

import (
	"math"
	"testing"
	"time"

	"splitsnap/internal/model"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		Expenses:        4,
		TotalSpend:      1200,
		OpenSettlements: 2,
		TotalOwed:       350.50,
	}
	curr := Snapshot{
		Expenses:        6,
		TotalSpend:      1750,
		OpenSettlements: 1,
		TotalOwed:       120.25,
	}

	delta := diffSnapshots(prev, curr)
	if delta.Expenses != 2 {
		t.Fatalf("Expenses delta = %d, want 2", delta.Expenses)
	}
	if math.Abs(delta.TotalSpend-550) > 1e-9 {
		t.Fatalf("TotalSpend delta = %.2f, want 550.00", delta.TotalSpend)
	}
	if delta.OpenSettlements != -1 {
		t.Fatalf("OpenSettlements delta = %d, want -1", delta.OpenSettlements)
	}
	if math.Abs(delta.TotalOwed-(-230.25)) > 1e-9 {
		t.Fatalf("TotalOwed delta = %.2f, want -230.25", delta.TotalOwed)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}

	if !diffSnapshots(curr, curr).isZero() {
		t.Fatal("identical snapshots should diff to zero")
	}
}

func TestSnapshotFromSheet(t *testing.T) {
	sheet := model.BalanceSheet{
		Expenses: []model.Expense{
			{Title: "Pizza", Amount: model.Amt(600), Payer: "Alice", Category: "Dining"},
			{Title: "Cab", Amount: model.Amt(250), Payer: "Bob", Category: "Travel"},
			{Title: "Chai", Amount: model.Amt(40), Payer: "Alice", Category: "Dining"},
		},
		Settlements: []model.Settlement{
			{From: "Bob", To: "Alice", Amount: model.Amt(175)},
			{From: "Carol", To: "Alice", Amount: model.Amt(-120)},
		},
		Balances: map[string]model.Amount{},
	}

	snap := snapshotFromSheet(sheet, time.Now())

	if snap.Expenses != 3 {
		t.Fatalf("Expenses = %d, want 3", snap.Expenses)
	}
	if math.Abs(snap.TotalSpend-890) > 1e-9 {
		t.Fatalf("TotalSpend = %.2f, want 890.00", snap.TotalSpend)
	}
	if snap.OpenSettlements != 2 {
		t.Fatalf("OpenSettlements = %d, want 2", snap.OpenSettlements)
	}
	// Owed totals use magnitudes, so the negative amount still counts.
	if math.Abs(snap.TotalOwed-295) > 1e-9 {
		t.Fatalf("TotalOwed = %.2f, want 295.00", snap.TotalOwed)
	}
	if snap.TopCategory != "Dining" {
		t.Fatalf("TopCategory = %q, want Dining", snap.TopCategory)
	}
	if snap.Settled {
		t.Fatal("sheet with open settlements reported as settled")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	}, nil)

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}
