package utils

import (
	"fmt"
	"time"
)

// Stats tracks simulation progress for the status line
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	Stagnant             bool
	StartTime            time.Time
	lastGeneration       time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation
func (s *Stats) Update(population int, stagnant bool, now time.Time) {
	s.TotalGenerations++
	s.Population = population
	s.Stagnant = stagnant

	if !s.lastGeneration.IsZero() {
		if d := now.Sub(s.lastGeneration); d > 0 {
			s.GenerationsPerSecond = 1.0 / d.Seconds()
		}
	}
	s.lastGeneration = now

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// SetPopulation records a population change made outside a generation step
func (s *Stats) SetPopulation(population int) {
	s.Population = population
	s.Stagnant = false
}

// Reset starts counting from generation zero again
func (s *Stats) Reset(population int) {
	*s = Stats{StartTime: time.Now(), Population: population}
}

// Status renders the title shown in the window
func (s *Stats) Status(title string, running bool) string {
	state := "PAUSED"
	if running {
		state = "ACTIVE"
	}
	status := fmt.Sprintf("%s [%s] gen %d | pop %d", title, state, s.TotalGenerations, s.Population)
	if running && s.GenerationsPerSecond > 0 {
		status += fmt.Sprintf(" | %.1f gen/s", s.GenerationsPerSecond)
	}
	if s.Stagnant {
		status += " | stagnant"
	}
	return status
}
