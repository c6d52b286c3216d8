package components

import "testing"

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		name  string
		total int
		n     int
		want  []int
	}{
		{"even split", 120, 4, []int{30, 30, 30, 30}},
		{"remainder to first items", 122, 4, []int{31, 31, 30, 30}},
		{"single card", 77, 1, []int{77}},
		{"more cards than columns", 3, 5, []int{1, 1, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutRow(tt.total, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("LayoutRow(%d, %d) len = %d, want %d", tt.total, tt.n, len(got), len(tt.want))
			}
			sum := 0
			for i, w := range got {
				if w != tt.want[i] {
					t.Errorf("width[%d] = %d, want %d", i, w, tt.want[i])
				}
				sum += w
			}
			if sum != tt.total {
				t.Errorf("widths sum to %d, want %d", sum, tt.total)
			}
		})
	}

	if LayoutRow(100, 0) != nil {
		t.Error("LayoutRow with zero cards should return nil")
	}
}

func TestTabVisualWidth(t *testing.T) {
	overview := Tabs[0] // in-name shortcut
	settings := Tabs[len(Tabs)-1]
	if settings.KeyPos != -1 {
		t.Fatalf("expected last tab to carry an out-of-name shortcut")
	}

	if got := TabVisualWidth(overview, true); got != len("Overview") {
		t.Errorf("active tab width = %d, want %d", got, len("Overview"))
	}
	if got := TabVisualWidth(overview, false); got != len("Overview")+2 {
		t.Errorf("inactive in-name tab width = %d, want %d", got, len("Overview")+2)
	}
	if got := TabVisualWidth(settings, false); got != len("Settings")+3 {
		t.Errorf("appended-key tab width = %d, want %d", got, len("Settings")+3)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
