package core

import (
	"fmt"
	"time"
)

// Stats captures the figures surfaces show next to the grid.
type Stats struct {
	Generation int
	Population int
	Workers    int
	LastStep   time.Duration
}

// StatsProvider is implemented by sims that report Stats.
type StatsProvider interface {
	Stats() Stats
}

// Lines formats the stats for a text panel, one figure per line.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("gen %d", s.Generation),
		fmt.Sprintf("alive %d", s.Population),
		fmt.Sprintf("workers %d", s.Workers),
		fmt.Sprintf("step %s", s.LastStep.Round(time.Microsecond)),
	}
}

// String joins the stats on a single line.
func (s Stats) String() string {
	return fmt.Sprintf("gen %d  alive %d  workers %d  step %s",
		s.Generation, s.Population, s.Workers, s.LastStep.Round(time.Microsecond))
}
