package ui

import (
	"fmt"
	"time"

	"lifefb/internal/stats"
)

// Lines formats the statistics shown by the HUD and the terminal status bar.
func Lines(s *stats.Stats, paused bool) []string {
	state := "running"
	if paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("gen %d  pop %d  (%s)", s.Generation, s.Population, state),
		fmt.Sprintf("avg pop %.1f  %.1f gen/s  up %s", s.AveragePopulation, s.GenerationsPerSecond, s.Runtime().Round(time.Second)),
		"space pause  n step  r reset  h hud  q quit",
	}
}
