package core

import "testing"

func TestMarkGridMarkOnce(t *testing.T) {
	g := NewMarkGrid(4, 3)
	if !g.Mark(3, 2) {
		t.Fatal("first mark should report a fresh flag")
	}
	if g.Mark(3, 2) {
		t.Fatal("second mark of the same cell should report false")
	}
	if !g.Marked(3, 2) || g.Marked(2, 2) {
		t.Fatal("unexpected mark state")
	}
	g.Unmark(3, 2)
	if g.Marked(3, 2) {
		t.Fatal("unmark should clear the flag")
	}
	g.Mark(0, 0)
	g.Mark(1, 1)
	g.Clear()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Marked(x, y) {
				t.Fatalf("cell (%d,%d) still marked after Clear", x, y)
			}
		}
	}
}

func TestMarkGridContainsDoesNotWrap(t *testing.T) {
	g := NewMarkGrid(5, 5)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{5, 0, false},
		{0, 5, false},
	}
	for _, tc := range cases {
		if got := g.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%d,%d)=%v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestNewMarkGridClampsDimensions(t *testing.T) {
	g := NewMarkGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}
