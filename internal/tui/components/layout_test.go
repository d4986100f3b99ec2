package components

import (
	"testing"
	"unicode"
)

func TestLayoutRow_SumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{100, 3},
		{101, 4},
		{80, 5},
		{7, 2},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d): got %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
		// Widths differ by at most one.
		for _, w := range widths {
			if w < widths[len(widths)-1] || w > widths[0] {
				t.Errorf("LayoutRow(%d, %d) uneven: %v", tc.total, tc.n, widths)
			}
		}
	}
}

func TestLayoutRow_Empty(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
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

func TestTabKeyPositions(t *testing.T) {
	// KeyPos marks the letter RenderTabBar highlights; the keypress itself
	// is lowercase, so the match is case-insensitive.
	for _, tab := range Tabs {
		if tab.KeyPos < 0 {
			continue
		}
		if tab.KeyPos >= len(tab.Name) ||
			unicode.ToLower(rune(tab.Name[tab.KeyPos])) != unicode.ToLower(tab.Key) {
			t.Errorf("tab %q: KeyPos %d does not point at %q", tab.Name, tab.KeyPos, tab.Key)
		}
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want floor of 10", got)
	}
}
