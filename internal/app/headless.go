package app

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"afterglow/internal/core"
	"afterglow/internal/render"
)

// RunHeadless advances sim cfg.Steps generations, painting every drained
// change set onto an in-memory canvas, then writes the final frame to out as
// PNG. A summary is printed to status.
func RunHeadless(sim core.Sim, cfg *Config, out, status io.Writer) (*core.Stats, error) {
	canvas := render.NewCanvas(cfg.Window, cfg.Window, backgroundColor)
	w, h := canvas.Size()
	fw, fh := float64(w), float64(h)

	stats := core.NewStats()
	var laps stepTimer
	canvas.Paint(sim.Changes(fw, fh))
	for i := 0; i < cfg.Steps; i++ {
		sim.Step()
		changes := sim.Changes(fw, fh)
		canvas.Paint(changes)
		generation, population := simCounters(sim)
		stats.Update(generation, population, len(changes), laps.lap(time.Now()))
	}

	size := sim.Size()
	generation, population := simCounters(sim)
	fmt.Fprintf(status, "Grid: %dx%d | Generation: %d | Living: %d\n", size.W, size.H, generation, population)
	fmt.Fprintf(status, "Performance: %.1f gen/sec | Avg changes: %.1f | Avg pop: %.1f | Runtime: %.2fs\n",
		stats.GenerationsPerSecond, stats.AverageChanges, stats.AveragePopulation, stats.Runtime().Seconds())

	if err := canvas.WritePNG(out); err != nil {
		return stats, errors.Wrap(err, "[RunHeadless] failed to write frame")
	}
	return stats, nil
}
