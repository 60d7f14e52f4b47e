package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	LatticeCells         int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds in one generation's figures
func (s *Stats) Update(generation, population, latticeCells int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.LatticeCells = latticeCells
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

// Density returns the share of lattice cells that are alive, in percent
func (s *Stats) Density() float64 {
	if s.LatticeCells == 0 {
		return 0
	}
	return float64(s.ActiveCells) / float64(s.LatticeCells) * 100
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
