package model

import (
	"crypto/md5"
	"fmt"
)

const historySize = 5

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for off, alive := range g.cells {
		if alive {
			buf[off] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to history and maintains its size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last three
// recorded states, which catches still lifes and oscillators up to period 3.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == current {
			return true
		}
	}
	return false
}
