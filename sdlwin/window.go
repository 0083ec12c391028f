// Package sdlwin shows the board in an SDL2 window, drawing straight onto
// the window surface.
package sdlwin

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sheikhrachel/go-life/app"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Window is an SDL window implementing model.Surface and app.EventSource.
// SDL requires every call to come from the thread that created the window.
type Window struct {
	window   *sdl.Window
	surface  *sdl.Surface
	palette  map[model.Color]uint32
	cellSize int
	width    int
	height   int
}

// Open creates the window. Any failure is returned before the event loop
// starts and leaves SDL shut down.
func Open(cfg utils.Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "[Open] failed to initialize SDL")
	}

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrapf(err, "[Open] failed to create %dx%d window", cfg.Width, cfg.Height)
	}

	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "[Open] failed to get window surface")
	}

	black := sdl.MapRGB(surface.Format, 0x00, 0x00, 0x00)
	white := sdl.MapRGB(surface.Format, 0xff, 0xff, 0xff)

	return &Window{
		window:  window,
		surface: surface,
		palette: map[model.Color]uint32{
			model.ColorDead:     white,
			model.ColorAlive:    black,
			model.ColorGridLine: black,
		},
		cellSize: cfg.CellSize,
		width:    cfg.Width,
		height:   cfg.Height,
	}, nil
}

// View returns the pixel geometry: square cells with one pixel grid lines
func (w *Window) View() model.View {
	return model.SquareView(w.cellSize)
}

// Size returns the window size in pixels
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// FillRect paints a pixel rectangle on the window surface
func (w *Window) FillRect(r model.Rect, c model.Color) error {
	color, ok := w.palette[c]
	if !ok {
		return errors.Errorf("[FillRect] unknown color %d", c)
	}
	rect := sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
	if err := w.surface.FillRect(&rect, color); err != nil {
		return errors.Wrap(err, "[FillRect] SDL fill failed")
	}
	return nil
}

// Present copies the window surface to the screen
func (w *Window) Present() error {
	if err := w.window.UpdateSurface(); err != nil {
		return errors.Wrap(err, "[Present] failed to update window surface")
	}
	return nil
}

// SetTitle shows the status in the title bar
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

// PollEvent returns the next pending SDL event the game cares about
func (w *Window) PollEvent() (app.Event, bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if out, ok := translate(ev); ok {
			return out, true
		}
	}
	return app.Event{}, false
}

func translate(ev sdl.Event) (app.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return app.Event{Kind: app.Quit}, true

	case *sdl.MouseButtonEvent:
		if ev.Type != sdl.MOUSEBUTTONDOWN || ev.Button != sdl.BUTTON_LEFT {
			return app.Event{}, false
		}
		return app.Event{Kind: app.PointerDown, X: int(ev.X), Y: int(ev.Y)}, true

	case *sdl.KeyboardEvent:
		if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
			return app.Event{}, false
		}
		return app.Event{Kind: app.KeyDown, Key: keyFor(ev.Keysym.Sym)}, true
	}
	return app.Event{}, false
}

func keyFor(sym sdl.Keycode) app.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return app.KeyQuit
	case sdl.K_SPACE, sdl.K_n, sdl.K_c, sdl.K_r, sdl.K_q:
		return app.KeyForRune(rune(sym))
	default:
		return app.KeyOther
	}
}

// Close destroys the window and shuts SDL down
func (w *Window) Close() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
}
