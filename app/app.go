package app

import (
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Clicker gives audible feedback when a cell is toggled by hand
type Clicker interface {
	Click()
}

// App owns the grid and the play/pause state. Every method must be called
// from the loop goroutine.
type App struct {
	config   utils.Config
	grid     *model.Grid
	renderer *model.Renderer
	stats    *utils.Stats
	clicker  Clicker
	rng      *rand.Rand
	running  bool
}

// New wires an App around an existing grid and renderer
func New(config utils.Config, grid *model.Grid, renderer *model.Renderer) *App {
	return &App{
		config:   config,
		grid:     grid,
		renderer: renderer,
		stats:    utils.NewStats(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetClicker enables click feedback; nil disables it
func (a *App) SetClicker(c Clicker) {
	a.clicker = c
}

// SetRand replaces the random source used for reseeding
func (a *App) SetRand(rng *rand.Rand) {
	a.rng = rng
}

// Running reports whether generations advance on ticks
func (a *App) Running() bool {
	return a.running
}

// Grid returns the board
func (a *App) Grid() *model.Grid {
	return a.grid
}

// Stats returns the progress counters
func (a *App) Stats() *utils.Stats {
	return a.stats
}

// Start paints the first frame
func (a *App) Start() error {
	a.stats.SetPopulation(a.grid.CountLivingCells())
	return a.redrawAll()
}

// Dispatch applies one event. It returns false when the loop should stop.
func (a *App) Dispatch(ev Event) (bool, error) {
	switch ev.Kind {
	case PointerDown:
		return true, a.pointerDown(ev.X, ev.Y)
	case KeyDown:
		return a.keyDown(ev.Key)
	case Tick:
		if !a.running {
			return true, nil
		}
		return true, a.step()
	case Quit:
		return false, nil
	default:
		return true, nil
	}
}

func (a *App) pointerDown(x, y int) error {
	row, col := a.renderer.View().CellAt(x, y)
	cell, ok := a.grid.ToggleCell(row, col)
	if !ok {
		return nil
	}

	if err := a.renderer.DrawCell(a.grid, cell); err != nil {
		return err
	}
	if a.clicker != nil {
		a.clicker.Click()
	}
	a.stats.SetPopulation(a.grid.CountLivingCells())
	a.renderer.SetStatus(a.status())
	return a.renderer.Present()
}

func (a *App) keyDown(key Key) (bool, error) {
	switch key {
	case KeyToggleRun:
		a.running = !a.running
		log.Printf("simulation %s at generation %d", a.stateName(), a.stats.TotalGenerations)
		a.renderer.SetStatus(a.status())
		return true, a.renderer.Present()
	case KeyStep:
		if a.running {
			return true, nil
		}
		return true, a.step()
	case KeyClear:
		a.grid.Clear()
		a.stats.Reset(0)
		return true, a.redrawAll()
	case KeyRandomize:
		a.grid.Reseed(model.SeedRandom, a.config.RandomDensity, a.rng)
		a.stats.Reset(a.grid.CountLivingCells())
		return true, a.redrawAll()
	case KeyQuit:
		return false, nil
	default:
		return true, nil
	}
}

// step advances one generation and repaints
func (a *App) step() error {
	if _, err := a.grid.AdvanceParallel(a.config.Workers); err != nil {
		return errors.Wrap(err, "[step] generation advance failed")
	}

	stagnant := a.grid.IsStagnant()
	a.grid.UpdateHistory()
	a.stats.Update(a.grid.CountLivingCells(), stagnant, time.Now())

	return a.redrawAll()
}

func (a *App) redrawAll() error {
	if err := a.renderer.DrawAll(a.grid); err != nil {
		return err
	}
	a.renderer.SetStatus(a.status())
	return a.renderer.Present()
}

func (a *App) status() string {
	return a.stats.Status(a.config.Title, a.running)
}

func (a *App) stateName() string {
	if a.running {
		return "started"
	}
	return "paused"
}
