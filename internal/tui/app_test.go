package tui

import (
	"path/filepath"
	"testing"

	"splitsnap/internal/config"
	"splitsnap/internal/model"
	"splitsnap/internal/store"
	"splitsnap/internal/tui/components"
)

// tabSpans recomputes the click ranges the same way RenderTabBar lays
// tabs out: one leading space, two spaces between tabs.
func tabSpans(activeTab int) [][2]int {
	spans := make([][2]int, len(components.Tabs))
	pos := 1
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == activeTab)
		spans[i] = [2]int{pos, pos + w}
		pos += w + 2
	}
	return spans
}

func TestTabAtX(t *testing.T) {
	app := App{activeTab: 0}
	spans := tabSpans(app.activeTab)

	for i, span := range spans {
		if got := app.tabAtX(span[0]); got != i {
			t.Errorf("click at left edge of tab %d landed on %d", i, got)
		}
		if got := app.tabAtX(span[1] - 1); got != i {
			t.Errorf("click at right edge of tab %d landed on %d", i, got)
		}
	}

	// The leading space and the gaps between tabs are dead zones.
	if got := app.tabAtX(0); got != -1 {
		t.Errorf("click on leading space = %d, want -1", got)
	}
	if got := app.tabAtX(spans[0][1]); got != -1 {
		t.Errorf("click in first gap = %d, want -1", got)
	}
	if got := app.tabAtX(spans[len(spans)-1][1] + 50); got != -1 {
		t.Errorf("click past last tab = %d, want -1", got)
	}
}

func testSheet() model.BalanceSheet {
	return model.BalanceSheet{
		Settlements: []model.Settlement{
			{From: "Alice", To: "Dev", Amount: model.Amt(100)},
			{From: "Bob", To: "Dev", Amount: model.Amt(200)},
			{From: "Carol", To: "Dev", Amount: model.Amt(300)},
		},
		Balances: map[string]model.Amount{},
	}
}

func newTestApp(t *testing.T, sess *store.Store) App {
	t.Helper()
	a := App{
		cfg:     config.DefaultConfig(),
		builder: newBuilder(config.DefaultConfig()),
		sess:    sess,
		sheet:   testSheet(),
	}
	a.recompute()
	return a
}

func TestMarkSelectedPaidTwice(t *testing.T) {
	sess, err := store.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = sess.Close() })

	app := newTestApp(t, sess)
	if err := sess.SaveSheet(app.sheet); err != nil {
		t.Fatal(err)
	}

	// Mark the top settlement paid twice in a row. Both the in-memory
	// view and the cached session must end up with only Carol's.
	for i := 0; i < 2; i++ {
		m, _ := app.markSelectedPaid()
		app = m.(App)
	}

	if len(app.sheet.Settlements) != 1 || app.sheet.Settlements[0].From != "Carol" {
		t.Fatalf("view settlements = %+v, want only Carol's", app.sheet.Settlements)
	}

	cached, err := sess.LoadSheet()
	if err != nil {
		t.Fatal(err)
	}
	if len(cached.Settlements) != 1 || cached.Settlements[0].From != "Carol" {
		t.Fatalf("cached settlements = %+v, want only Carol's", cached.Settlements)
	}
}

func TestTopPayer(t *testing.T) {
	if got := topPayer(map[string]float64{"Alice": 300, "Bob": 500}); got != "Bob" {
		t.Errorf("topPayer = %q, want Bob", got)
	}
	if got := topPayer(map[string]float64{"Carol": 200, "Bob": 200}); got != "Bob" {
		t.Errorf("tie topPayer = %q, want Bob (name order)", got)
	}
	if got := topPayer(nil); got != "" {
		t.Errorf("topPayer(nil) = %q, want empty", got)
	}
}

func TestMarkSelectedPaidWithoutSession(t *testing.T) {
	app := newTestApp(t, nil)

	m, _ := app.markSelectedPaid()
	app = m.(App)

	if len(app.sheet.Settlements) != 2 {
		t.Fatalf("view settlements = %d, want 2", len(app.sheet.Settlements))
	}
}

func TestTabAtXActiveTabShrinks(t *testing.T) {
	// The active tab drops its bracketed shortcut, so every hitbox to
	// its right shifts left. Verify the spans still line up.
	app := App{activeTab: 2}
	spans := tabSpans(app.activeTab)

	for i, span := range spans {
		mid := (span[0] + span[1]) / 2
		if got := app.tabAtX(mid); got != i {
			t.Errorf("click at center of tab %d landed on %d", i, got)
		}
	}
}
