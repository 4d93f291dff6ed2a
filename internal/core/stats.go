package core

import "time"

// Stats accumulates per-frame statistics for status displays.
type Stats struct {
	StartTime            time.Time
	TotalGenerations     int
	GenerationsPerSecond float64
	AveragePopulation    float64
	LastChanges          int
	AverageChanges       float64
}

// NewStats returns Stats anchored at the current time.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one advanced generation. duration is the wall time since the
// previous generation.
func (s *Stats) Update(generation, population, changes int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.LastChanges = changes

	// Exponential moving averages; the first sample seeds them.
	if s.AveragePopulation == 0 && s.AverageChanges == 0 {
		s.AveragePopulation = float64(population)
		s.AverageChanges = float64(changes)
		return
	}
	s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	s.AverageChanges = s.AverageChanges*0.9 + float64(changes)*0.1
}

// Runtime returns the wall time since the stats were created.
func (s *Stats) Runtime() time.Duration { return time.Since(s.StartTime) }
