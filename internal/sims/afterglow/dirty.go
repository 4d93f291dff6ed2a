package afterglow

import (
	"image/color"

	"afterglow/internal/core"
)

// dirtyList records the coordinates touched since the last drain, in the order
// they were first found. A coordinate is listed at most once. shown holds the
// color each cell had when it was last drained so cells that returned to that
// color can be skipped.
type dirtyList struct {
	points []core.Point
	marks  *core.MarkGrid
	shown  []color.RGBA
	full   bool
}

func newDirtyList(size int) *dirtyList {
	shown := make([]color.RGBA, size*size)
	for i := range shown {
		shown[i] = OffColor
	}
	return &dirtyList{marks: core.NewMarkGrid(size, size), shown: shown}
}

func (d *dirtyList) add(x, y int) {
	if d.marks.Mark(x, y) {
		d.points = append(d.points, core.Point{X: x, Y: y})
	}
}

// forceAll makes the next drain report every listed cell even when its color
// matches what was last drained.
func (d *dirtyList) forceAll() { d.full = true }

// report records c as the drained color of cell i and tells whether the cell
// belongs in the drain.
func (d *dirtyList) report(i int, c color.RGBA) bool {
	if !d.full && d.shown[i] == c {
		return false
	}
	d.shown[i] = c
	return true
}

func (d *dirtyList) len() int { return len(d.points) }

// reset empties the list, keeping the backing storage.
func (d *dirtyList) reset() {
	for _, p := range d.points {
		d.marks.Unmark(p.X, p.Y)
	}
	d.points = d.points[:0]
	d.full = false
}
