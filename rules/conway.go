package rules

// ApplyConwayRules returns the next state of a cell: a live cell survives
// with 2 or 3 neighbors, and any cell with exactly 3 neighbors is alive.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// ShouldFlip reports whether a cell changes state in the next generation.
// A live cell with fewer than 2 or more than 3 neighbors dies, a dead cell
// with exactly 3 is born, and every other cell keeps its state.
func ShouldFlip(neighbors int, alive bool) bool {
	return ApplyConwayRules(neighbors, alive) != alive
}
