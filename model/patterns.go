package model

import (
	"math/rand"
)

// AddGlider adds a glider pattern with its top-left corner at (row, col)
func (g *Grid) AddGlider(row, col int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dr, line := range pattern {
		for dc, cell := range line {
			g.Set(row+dr, col+dc, cell)
		}
	}
}

// AddBlinker adds a horizontal period-2 blinker starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.Set(row, col, true)
	g.Set(row, col+1, true)
	g.Set(row, col+2, true)
}

// AddBlock adds a 2x2 still life with its top-left corner at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.Set(row, col, true)
	g.Set(row, col+1, true)
	g.Set(row+1, col, true)
	g.Set(row+1, col+1, true)
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	for off := range g.cells {
		g.cells[off] = rng.Float64() < density
	}
	g.history = nil
}

// Seed names an initial layout
type Seed string

const (
	SeedEmpty  Seed = "empty"
	SeedRandom Seed = "random"
	SeedDemo   Seed = "demo"
)

// Reseed clears the grid and lays out the requested seed
func (g *Grid) Reseed(seed Seed, density float64, rng *rand.Rand) {
	g.Clear()

	switch seed {
	case SeedRandom:
		g.Randomize(density, rng)
	case SeedDemo:
		if g.width < 10 || g.height < 10 {
			return
		}
		g.AddGlider(1, 1)
		g.AddBlinker(g.height/4, g.width/2)
		g.AddBlock(g.height/2, g.width/4)
		if g.width >= 20 && g.height >= 20 {
			g.AddGlider(g.height/2, g.width-8)
			g.AddBlinker(3*g.height/4, 3*g.width/4)
		}
	}
}
