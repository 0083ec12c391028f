package main

import (
	"context"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/app"
	"github.com/sheikhrachel/go-life/audio"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/sdlwin"
	"github.com/sheikhrachel/go-life/termwin"
	"github.com/sheikhrachel/go-life/utils"
)

// window is what the game needs from a backend
type window interface {
	model.Surface
	app.EventSource
	View() model.View
	Size() (int, int)
	Close()
}

// loadConfig reads the config file, falling back to defaults when it is missing
func loadConfig(path string) utils.Config {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config
	}
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Using default configuration (%s not found)", path)
	} else {
		log.Printf("Using default configuration: %v", err)
	}
	return utils.DefaultConfig()
}

// setupLogging keeps log output off the terminal board
func setupLogging(config utils.Config) (func(), error) {
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "[setupLogging] failed to open log file: %+v", config.LogFile)
		}
		log.SetOutput(f)
		return func() {
			log.SetOutput(os.Stderr)
			f.Close()
		}, nil
	}
	if config.Backend == utils.BackendTerminal {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	return func() {}, nil
}

// openWindow creates the configured backend
func openWindow(config utils.Config) (window, error) {
	switch config.Backend {
	case utils.BackendTerminal:
		screen, err := termwin.Open(config)
		if err != nil {
			return nil, err
		}
		return screen, nil
	case utils.BackendSDL:
		win, err := sdlwin.Open(config)
		if err != nil {
			return nil, err
		}
		return win, nil
	default:
		return nil, errors.Errorf("[openWindow] unknown backend %q", config.Backend)
	}
}

// initializeGame sets up the grid, seeds it and binds it to the window
func initializeGame(config utils.Config, win window) *app.App {
	policy := model.OffsetBounds
	if config.StrictBounds {
		policy = model.StrictBounds
	}

	// The window decides the board size; a terminal may be smaller than the
	// configured pixel dimensions.
	width, height := win.Size()
	view := win.View()
	grid := model.NewGridForView(width, height, view, policy)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	grid.Reseed(model.Seed(config.Pattern), config.RandomDensity, rng)

	renderer := model.NewRenderer(win, view, width, height)

	game := app.New(config, grid, renderer)
	game.SetRand(rng)

	log.Printf("Grid: %dx%d | Bounds: %s | Initial living cells: %d",
		grid.Width(), grid.Height(), policy, grid.CountLivingCells())
	return game
}

// run opens the window and drives the game until the user quits
func run(ctx context.Context, config utils.Config) error {
	win, err := openWindow(config)
	if err != nil {
		return err
	}
	defer win.Close()

	game := initializeGame(config, win)

	if config.Sound {
		clicker, err := audio.NewClicker()
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer clicker.Close()
			game.SetClicker(clicker)
		}
	}

	if err := game.Start(); err != nil {
		return err
	}
	if err := game.Run(ctx, win); err != nil {
		return err
	}

	stats := game.Stats()
	log.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)
	return nil
}
