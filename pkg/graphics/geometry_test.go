package graphics

import (
	"image/color"
	"testing"
)

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(-1294, 0, 1366, 168)
	if r.Right != 72 || r.Bottom != 168 {
		t.Errorf("RectFromLTWH right/bottom = %d/%d, want 72/168", r.Right, r.Bottom)
	}
	if r.Width() != 1366 || r.Height() != 168 {
		t.Errorf("size = %v, want 1366x168", r.Size())
	}
	if got := r.Origin(); got != (Offset{X: -1294, Y: 0}) {
		t.Errorf("Origin() = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	screen := RectFromLTWH(0, 0, 144, 168)
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", RectFromLTWH(74, 20, 70, 15), true},
		{"edge", RectFromLTWH(0, 0, 144, 168), true},
		{"above", RectFromLTWH(74, -50, 70, 15), false},
		{"straddling", RectFromLTWH(140, 10, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screen.Contains(tt.r); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectIntersectAndOverlaps(t *testing.T) {
	screen := RectFromLTWH(0, 0, 144, 168)
	hidden := RectFromLTWH(74, -50, 70, 15)
	if screen.Overlaps(hidden) {
		t.Error("hidden label should not overlap the screen")
	}
	if got := screen.Intersect(RectFromLTWH(100, 100, 100, 100)); got != (Rect{Left: 100, Top: 100, Right: 144, Bottom: 168}) {
		t.Errorf("Intersect = %v", got)
	}
	if !screen.Intersect(hidden).IsEmpty() {
		t.Error("expected empty intersection")
	}
}

func TestRectTranslateUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := a.Translate(10, 5)
	if b != (Rect{Left: 10, Top: 5, Right: 20, Bottom: 15}) {
		t.Errorf("Translate = %v", b)
	}
	if u := a.Union(b); u != (Rect{Left: 0, Top: 0, Right: 20, Bottom: 15}) {
		t.Errorf("Union = %v", u)
	}
	if w := a.WithOrigin(3, -4); w != RectFromLTWH(3, -4, 10, 10) {
		t.Errorf("WithOrigin = %v", w)
	}
}

func TestColorConversions(t *testing.T) {
	if got := ColorOrange.Hex(); got != "#FF5500" {
		t.Errorf("Hex() = %q, want #FF5500", got)
	}
	n := ColorOrange.NRGBA()
	if n != (color.NRGBA{R: 0xFF, G: 0x55, B: 0x00, A: 0xFF}) {
		t.Errorf("NRGBA() = %v", n)
	}
	if FromColor(n) != ColorOrange {
		t.Error("FromColor did not round trip")
	}
}
