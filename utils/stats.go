package utils

import (
	"fmt"
	"time"
)

// Stats tracks how fast and how populated the run is
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Population           int
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// String formats the stats as a single status line
func (s *Stats) String() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Avg Pop: %.1f | %.1f gen/sec",
		s.TotalGenerations, s.Population, s.AveragePopulation, s.GenerationsPerSecond)
}
