package ui

import (
	"fmt"
	"strings"

	"afterglow/internal/core"
)

// StatusLines formats the sim's parameter snapshot and frame statistics, one
// entry per line. stats may be nil.
func StatusLines(sim core.Sim, stats *core.Stats, paused bool) []string {
	var lines []string
	title := sim.Name()
	if paused {
		title += " (paused)"
	}
	lines = append(lines, title)

	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, g := range provider.Parameters().Groups {
			for _, p := range g.Params {
				lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
			}
		}
	}

	if stats != nil {
		lines = append(lines,
			fmt.Sprintf("Gen/sec: %.1f", stats.GenerationsPerSecond),
			fmt.Sprintf("Changes: %d (avg %.1f)", stats.LastChanges, stats.AverageChanges),
			fmt.Sprintf("Avg population: %.1f", stats.AveragePopulation),
		)
	}
	return lines
}

// StatusBar squeezes the most useful counters into a single line of at most
// width runes.
func StatusBar(sim core.Sim, stats *core.Stats, paused bool, width int) string {
	values := map[string]string{}
	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, g := range provider.Parameters().Groups {
			for _, p := range g.Params {
				values[p.Key] = p.Value
			}
		}
	}
	parts := []string{sim.Name()}
	if v, ok := values["generation"]; ok {
		parts = append(parts, "gen "+v)
	}
	if v, ok := values["population"]; ok {
		parts = append(parts, "pop "+v)
	}
	if stats != nil {
		parts = append(parts, fmt.Sprintf("changes %d", stats.LastChanges), fmt.Sprintf("%.0f gen/s", stats.GenerationsPerSecond))
	}
	if paused {
		parts = append(parts, "paused")
	}
	line := strings.Join(parts, " | ")
	if width >= 0 && len([]rune(line)) > width {
		line = string([]rune(line)[:width])
	}
	return line
}
