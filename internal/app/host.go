package app

import (
	"image/color"
	"time"

	"afterglow/internal/core"
)

// backgroundColor matches the color of a cell that is neither alive nor
// glowing, so untouched canvas areas look like dead cells.
var backgroundColor = color.RGBA{A: 255}

type counters interface {
	Generation() int
	Population() int
}

// simCounters returns the generation and population of sims that track them.
func simCounters(sim core.Sim) (int, int) {
	if c, ok := sim.(counters); ok {
		return c.Generation(), c.Population()
	}
	return 0, 0
}

// stepTimer measures wall time between generations for Stats.
type stepTimer struct {
	last time.Time
}

func (t *stepTimer) lap(now time.Time) time.Duration {
	var d time.Duration
	if !t.last.IsZero() {
		d = now.Sub(t.last)
	}
	t.last = now
	return d
}
