package afterglow

import "image/color"

// TrailMax is the number of generations a dead cell keeps glowing after it
// dies. The glow fades by one step per generation and reaches the off color
// after exactly TrailMax generations.
const TrailMax = 10

var (
	// AliveColor paints living cells.
	AliveColor = color.RGBA{R: 255, A: 255}
	// OffColor paints dead cells that have finished fading.
	OffColor = color.RGBA{A: 255}
)

// Cell is the state of one grid position. Values handed out by Automata are
// copies; mutating them has no effect on the grid.
type Cell struct {
	alive bool
	trail uint8

	// prevAlive holds alive as of the start of the generation being computed.
	prevAlive bool
}

// Alive reports whether the cell is alive in the current generation.
func (c Cell) Alive() bool { return c.alive }

// Trail returns the remaining afterglow, in [0, TrailMax]. Living cells have
// no trail.
func (c Cell) Trail() int { return int(c.trail) }

// Color maps the cell state to its rendered color. Trail intensity goes to the
// blue channel, proportional to trail/TrailMax.
func (c Cell) Color() color.RGBA {
	if c.alive {
		return AliveColor
	}
	if c.trail == 0 {
		return OffColor
	}
	return color.RGBA{B: uint8(uint(c.trail) * 255 / TrailMax), A: 255}
}

// advance moves the cell into its next state and reports whether its rendered
// color changed.
func (c *Cell) advance(next bool) bool {
	before := c.Color()
	switch {
	case next:
		c.trail = 0
	case c.alive:
		c.trail = TrailMax
	case c.trail > 0:
		c.trail--
	}
	c.alive = next
	return c.Color() != before
}

// kill clears the cell without leaving a trail.
func (c *Cell) kill() bool {
	before := c.Color()
	*c = Cell{}
	return c.Color() != before
}
