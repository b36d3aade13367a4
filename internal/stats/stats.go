// Package stats tracks run statistics and recent grid history for frame
// drivers.
package stats

import "time"

// Stats tracks generation rate and population for the status display.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Population           int
	Generation           int
	StartTime            time.Time
}

// New returns Stats with the runtime clock started now.
func New() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame. duration is the wall time since the previous
// frame.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the wall time since the stats were created.
func (s *Stats) Runtime() time.Duration { return time.Since(s.StartTime) }
