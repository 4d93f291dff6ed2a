package afterglow

import (
	"image/color"
	"testing"
)

func TestCellColor(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want color.RGBA
	}{
		{"alive", Cell{alive: true}, AliveColor},
		{"alive ignores trail", Cell{alive: true, trail: 4}, AliveColor},
		{"off", Cell{}, OffColor},
		{"full glow", Cell{trail: TrailMax}, color.RGBA{B: 255, A: 255}},
		{"half glow", Cell{trail: TrailMax / 2}, color.RGBA{B: 127, A: 255}},
		{"last glow", Cell{trail: 1}, color.RGBA{B: 25, A: 255}},
	}
	for _, tc := range cases {
		if got := tc.cell.Color(); got != tc.want {
			t.Fatalf("%s: Color()=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCellAdvanceTransitions(t *testing.T) {
	cases := []struct {
		name      string
		start     Cell
		next      bool
		wantTrail int
		wantDirty bool
	}{
		{"birth", Cell{}, true, 0, true},
		{"birth from glow", Cell{trail: 3}, true, 0, true},
		{"survive", Cell{alive: true}, true, 0, false},
		{"death", Cell{alive: true}, false, TrailMax, true},
		{"decay", Cell{trail: 5}, false, 4, true},
		{"final decay", Cell{trail: 1}, false, 0, true},
		{"stay off", Cell{}, false, 0, false},
	}
	for _, tc := range cases {
		c := tc.start
		dirty := c.advance(tc.next)
		if c.Alive() != tc.next || c.Trail() != tc.wantTrail || dirty != tc.wantDirty {
			t.Fatalf("%s: alive=%v trail=%d dirty=%v, want %v/%d/%v",
				tc.name, c.Alive(), c.Trail(), dirty, tc.next, tc.wantTrail, tc.wantDirty)
		}
	}
}

func TestNextAlive(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			want := n == 3 || (alive && n == 2)
			if got := nextAlive(alive, n); got != want {
				t.Fatalf("nextAlive(%v, %d)=%v, want %v", alive, n, got, want)
			}
		}
	}
}
