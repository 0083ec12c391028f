package model

import (
	"github.com/sheikhrachel/go-life/rules"
)

// BoundsPolicy decides which coordinates a Grid accepts for toggles and reads
type BoundsPolicy int

const (
	// OffsetBounds accepts any coordinate whose flat offset row*width+col lies
	// in [0, width*height). A column past the row end aliases into the next row.
	OffsetBounds BoundsPolicy = iota
	// StrictBounds additionally requires 0 <= row < height and 0 <= col < width.
	StrictBounds
)

func (p BoundsPolicy) String() string {
	switch p {
	case OffsetBounds:
		return "offset"
	case StrictBounds:
		return "strict"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate
type Cell struct {
	Row int
	Col int
}

// Grid is the board: one flag per cell stored row-major in a flat slice
type Grid struct {
	width   int
	height  int
	policy  BoundsPolicy
	cells   []bool
	history []string // recent state hashes for stagnation detection
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int, policy BoundsPolicy) *Grid {
	width, height = max(0, width), max(0, height)
	return &Grid{
		width:  width,
		height: height,
		policy: policy,
		cells:  make([]bool, width*height),
	}
}

// NewGridForView sizes a grid to cover a width x height surface drawn with
// the given view. Partial cells at the right and bottom edge are dropped.
func NewGridForView(width, height int, view View, policy BoundsPolicy) *Grid {
	if view.CellW <= 0 || view.CellH <= 0 {
		return NewGrid(0, 0, policy)
	}
	return NewGrid(width/view.CellW, height/view.CellH, policy)
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Policy returns the bounds policy the grid was built with
func (g *Grid) Policy() BoundsPolicy {
	return g.policy
}

// offset resolves a coordinate to its flat index under the grid's policy
func (g *Grid) offset(row, col int) (int, bool) {
	if g.policy == StrictBounds && (row < 0 || row >= g.height || col < 0 || col >= g.width) {
		return 0, false
	}
	off := row*g.width + col
	if off < 0 || off >= len(g.cells) {
		return 0, false
	}
	return off, true
}

func (g *Grid) cellAt(off int) Cell {
	return Cell{Row: off / g.width, Col: off % g.width}
}

// Toggle flips the cell if the coordinate is accepted and reports whether a flip happened
func (g *Grid) Toggle(row, col int) bool {
	_, ok := g.ToggleCell(row, col)
	return ok
}

// ToggleCell flips the cell and returns the cell that was actually flipped,
// which under OffsetBounds may differ from (row, col) when col is past the
// end of the row.
func (g *Grid) ToggleCell(row, col int) (Cell, bool) {
	off, ok := g.offset(row, col)
	if !ok {
		return Cell{}, false
	}
	g.cells[off] = !g.cells[off]
	return g.cellAt(off), true
}

// IsAlive returns the state of a cell; rejected coordinates read as dead
func (g *Grid) IsAlive(row, col int) bool {
	off, ok := g.offset(row, col)
	if !ok {
		return false
	}
	return g.cells[off]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	if off, ok := g.offset(row, col); ok {
		g.cells[off] = alive
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
	g.history = nil
}

// NeighborCount counts live cells among the up to 8 neighbors of (row, col).
// Every neighbor is checked against the row and column ranges on its own, so
// border cells simply have fewer neighbors and nothing wraps.
func (g *Grid) NeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.height {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= g.width {
				continue
			}
			if g.cells[r*g.width+c] {
				count++
			}
		}
	}
	return count
}

// flipsInRows appends, in row-major order, every cell in rows [from, to) whose state changes
func (g *Grid) flipsInRows(dst []Cell, from, to int) []Cell {
	for row := from; row < to; row++ {
		for col := 0; col < g.width; col++ {
			if rules.ShouldFlip(g.NeighborCount(row, col), g.cells[row*g.width+col]) {
				dst = append(dst, Cell{Row: row, Col: col})
			}
		}
	}
	return dst
}

// collectFlips evaluates cells in the given offset order. The result does
// not depend on the order because nothing is mutated while counting.
func (g *Grid) collectFlips(order []int) []Cell {
	var flips []Cell
	for _, off := range order {
		c := g.cellAt(off)
		if rules.ShouldFlip(g.NeighborCount(c.Row, c.Col), g.cells[off]) {
			flips = append(flips, c)
		}
	}
	return flips
}

// Flips scans the whole grid in row-major order and returns the cells whose
// state must change for the next generation. The grid is not modified.
func (g *Grid) Flips() []Cell {
	return g.flipsInRows(nil, 0, g.height)
}

// Apply flips the given cells in order
func (g *Grid) Apply(flips []Cell) {
	for _, c := range flips {
		off := c.Row*g.width + c.Col
		g.cells[off] = !g.cells[off]
	}
}

// Advance computes the next generation against the current one, then
// applies it. It returns the flipped cells so callers can redraw them.
func (g *Grid) Advance() []Cell {
	flips := g.Flips()
	g.Apply(flips)
	return flips
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// LiveCells returns the coordinates of every living cell in row-major order
func (g *Grid) LiveCells() []Cell {
	var live []Cell
	for off, alive := range g.cells {
		if alive {
			live = append(live, g.cellAt(off))
		}
	}
	return live
}
