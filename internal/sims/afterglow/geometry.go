package afterglow

import "afterglow/internal/core"

// cellExtent divides a width x height target into size x size equal cells.
// Non-positive targets yield zero-area cells.
func cellExtent(size int, width, height float64) (float64, float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := float64(size)
	return width / n, height / n
}

// cellRect returns the target rectangle covering the cell at p.
func cellRect(p core.Point, cellW, cellH float64) core.Rect {
	return core.Rect{
		X: float64(p.X) * cellW,
		Y: float64(p.Y) * cellH,
		W: cellW,
		H: cellH,
	}
}
