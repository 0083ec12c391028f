package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sheikhrachel/go-life/utils"
)

// SDL must be driven from the main OS thread
func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to a JSON configuration file")
		backend    = flag.String("backend", "", "window backend: sdl or terminal")
		width      = flag.Int("width", 0, "screen width in pixels")
		height     = flag.Int("height", 0, "screen height in pixels")
		cellSize   = flag.Int("cell", 0, "cell size in pixels")
		tickMs     = flag.Int("tick", 0, "milliseconds per generation")
		pattern    = flag.String("pattern", "", "initial pattern: empty, random or demo")
		strict     = flag.Bool("strict-bounds", false, "reject clicks outside the board row by row")
		sound      = flag.Bool("sound", false, "click when a cell is toggled")
	)
	flag.Parse()

	config := loadConfig(*configPath)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			config.Backend = utils.Backend(*backend)
		case "width":
			config.Width = *width
		case "height":
			config.Height = *height
		case "cell":
			config.CellSize = *cellSize
		case "tick":
			config.TickIntervalMs = *tickMs
		case "pattern":
			config.Pattern = *pattern
		case "strict-bounds":
			config.StrictBounds = *strict
		case "sound":
			config.Sound = *sound
		}
	})

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	closeLog, err := setupLogging(config)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, config)
	stop()
	closeLog()

	if err != nil {
		log.Printf("Game of Life failed: %+v", err)
		os.Exit(1)
	}
}
