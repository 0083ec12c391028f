package model

import (
	"github.com/pkg/errors"
)

// Color is a logical paint color; each Surface maps it to its own palette
type Color int

const (
	ColorDead Color = iota
	ColorAlive
	ColorGridLine
)

// Rect is an axis-aligned rectangle in surface units (pixels or terminal cells)
type Rect struct {
	X, Y, W, H int
}

// Surface is the drawing side of a window
type Surface interface {
	FillRect(r Rect, c Color) error
	Present() error
}

// Titler is implemented by surfaces that can show a status string
type Titler interface {
	SetTitle(title string)
}

// View maps grid cells onto surface rectangles. Gap units at the right and
// bottom of every cell are left for grid lines.
type View struct {
	CellW int
	CellH int
	Gap   int
}

// SquareView is the pixel layout: square cells with one-unit grid lines
func SquareView(cellSize int) View {
	return View{CellW: cellSize, CellH: cellSize, Gap: 1}
}

// CellRect returns the rectangle painted for a cell
func (v View) CellRect(c Cell) Rect {
	return Rect{
		X: c.Col * v.CellW,
		Y: c.Row * v.CellH,
		W: v.CellW - v.Gap,
		H: v.CellH - v.Gap,
	}
}

// CellAt maps a surface point to the grid coordinate under it. The result
// is not bounds-checked; the grid decides whether it is usable.
func (v View) CellAt(x, y int) (row, col int) {
	if v.CellW <= 0 || v.CellH <= 0 {
		return -1, -1
	}
	return y / v.CellH, x / v.CellW
}

// GridLines returns the separator lines for a surface of the given size.
// Lines sit on the last unit of every cell, horizontally and vertically.
func (v View) GridLines(width, height int) []Rect {
	if v.Gap <= 0 {
		return nil
	}
	var lines []Rect
	for y := v.CellH - v.Gap; y < height; y += v.CellH {
		lines = append(lines, Rect{X: 0, Y: y, W: width, H: v.Gap})
	}
	for x := v.CellW - v.Gap; x < width; x += v.CellW {
		lines = append(lines, Rect{X: x, Y: 0, W: v.Gap, H: height})
	}
	return lines
}

// Renderer draws a Grid onto a Surface through a View
type Renderer struct {
	view    View
	surface Surface
	width   int
	height  int
}

// NewRenderer creates a renderer for a surface of width x height units
func NewRenderer(surface Surface, view View, width, height int) *Renderer {
	return &Renderer{
		view:    view,
		surface: surface,
		width:   width,
		height:  height,
	}
}

// View returns the cell geometry in use
func (r *Renderer) View() View {
	return r.view
}

// DrawBackground paints the dead background and grid lines
func (r *Renderer) DrawBackground() error {
	if err := r.surface.FillRect(Rect{W: r.width, H: r.height}, ColorDead); err != nil {
		return errors.Wrap(err, "[DrawBackground] failed to fill background")
	}
	for _, line := range r.view.GridLines(r.width, r.height) {
		if err := r.surface.FillRect(line, ColorGridLine); err != nil {
			return errors.Wrap(err, "[DrawBackground] failed to draw grid line")
		}
	}
	return nil
}

// DrawCell paints one cell in its current state
func (r *Renderer) DrawCell(g *Grid, c Cell) error {
	color := ColorDead
	if g.IsAlive(c.Row, c.Col) {
		color = ColorAlive
	}
	if err := r.surface.FillRect(r.view.CellRect(c), color); err != nil {
		return errors.Wrapf(err, "[DrawCell] failed to draw cell %d,%d", c.Row, c.Col)
	}
	return nil
}

// DrawCells paints the given cells
func (r *Renderer) DrawCells(g *Grid, cells []Cell) error {
	for _, c := range cells {
		if err := r.DrawCell(g, c); err != nil {
			return err
		}
	}
	return nil
}

// DrawAll repaints the background and every live cell
func (r *Renderer) DrawAll(g *Grid) error {
	if err := r.DrawBackground(); err != nil {
		return err
	}
	return r.DrawCells(g, g.LiveCells())
}

// Present pushes the drawn frame to the display
func (r *Renderer) Present() error {
	if err := r.surface.Present(); err != nil {
		return errors.Wrap(err, "[Present] failed to present frame")
	}
	return nil
}

// SetStatus shows a status string if the surface supports it
func (r *Renderer) SetStatus(status string) {
	if t, ok := r.surface.(Titler); ok {
		t.SetTitle(status)
	}
}
