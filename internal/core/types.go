package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point identifies a single grid cell by column and row.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen rectangle in target pixel units.
type Rect struct {
	X, Y float64
	W, H float64
}

// Change pairs a screen rectangle with the color it should be painted.
type Change struct {
	Rect  Rect
	Color color.RGBA
}

// Sim defines the minimal contract a cellular automaton must implement.
//
// Step advances one generation. Changes returns the rectangles whose color
// changed since the previous call, laid out over a width x height target, and
// forgets them. Hosts must alternate the two calls from a single goroutine.
//
// Reset rebuilds the initial board from seed. A seed of 0 asks the sim for its
// configured default seed, so 0 never seeds a board by itself.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Changes(width, height float64) []Change
}

// Redrawer is implemented by sims that can schedule a full repaint, e.g. after
// the render target was resized or recreated.
type Redrawer interface {
	Redraw()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
