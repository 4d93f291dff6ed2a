package core

// MarkGrid stores one flag per cell of a W x H grid in row-major order.
type MarkGrid struct {
	W, H int
	data []bool
}

// NewMarkGrid allocates a grid with the given dimensions.
func NewMarkGrid(w, h int) *MarkGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &MarkGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *MarkGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies inside the grid. Nothing wraps.
func (g *MarkGrid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Mark sets the flag at (x, y) and reports whether it was previously unset.
func (g *MarkGrid) Mark(x, y int) bool {
	idx := g.Index(x, y)
	if g.data[idx] {
		return false
	}
	g.data[idx] = true
	return true
}

// Marked reports the flag at (x, y).
func (g *MarkGrid) Marked(x, y int) bool { return g.data[g.Index(x, y)] }

// Unmark clears the flag at (x, y).
func (g *MarkGrid) Unmark(x, y int) { g.data[g.Index(x, y)] = false }

// Clear resets every flag.
func (g *MarkGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
