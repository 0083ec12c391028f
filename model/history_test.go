package model

import (
	"math/rand"
	"testing"
)

func TestIsStagnantDetectsStillLife(t *testing.T) {
	g := NewGrid(8, 8, OffsetBounds)
	g.AddBlock(3, 3)

	for gen := 0; gen < 3; gen++ {
		if g.IsStagnant() {
			t.Fatalf("generation %d: too little history to be stagnant", gen)
		}
		g.UpdateHistory()
		g.Advance()
	}
	if !g.IsStagnant() {
		t.Error("block should be reported stagnant")
	}
}

func TestIsStagnantDetectsBlinker(t *testing.T) {
	g := NewGrid(8, 8, OffsetBounds)
	g.AddBlinker(4, 2)

	for i := 0; i < 3; i++ {
		g.UpdateHistory()
		g.Advance()
	}
	if !g.IsStagnant() {
		t.Error("blinker should be reported stagnant")
	}
}

func TestIsStagnantIgnoresGlider(t *testing.T) {
	g := NewGrid(20, 20, OffsetBounds)
	g.AddGlider(1, 1)

	for i := 0; i < 4; i++ {
		g.UpdateHistory()
		g.Advance()
	}
	if g.IsStagnant() {
		t.Error("a travelling glider is not stagnant")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	g := NewGrid(4, 4, OffsetBounds)
	for i := 0; i < 20; i++ {
		g.UpdateHistory()
	}
	if len(g.history) != historySize {
		t.Errorf("expected %d entries, got %d", historySize, len(g.history))
	}
	g.Clear()
	if len(g.history) != 0 {
		t.Error("Clear should drop history")
	}
}

func TestReseed(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewGrid(40, 40, OffsetBounds)

	g.Reseed(SeedDemo, 0, rng)
	if g.CountLivingCells() == 0 {
		t.Error("demo seed should place patterns")
	}

	g.Reseed(SeedEmpty, 0, rng)
	if g.CountLivingCells() != 0 {
		t.Errorf("empty seed should clear the grid, got %d", g.CountLivingCells())
	}

	g.Reseed(SeedRandom, 1, rng)
	if g.CountLivingCells() != 40*40 {
		t.Errorf("density 1 should fill the grid, got %d", g.CountLivingCells())
	}

	small := NewGrid(5, 5, OffsetBounds)
	small.Reseed(SeedDemo, 0, rng)
	if small.CountLivingCells() != 0 {
		t.Error("demo seed needs at least a 10x10 grid")
	}
}
