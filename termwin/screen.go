// Package termwin shows the board in a terminal using tcell. Each grid cell
// takes two character columns and one row; the line under the board carries
// the status text.
package termwin

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/app"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	cellColumns = 2
	eventBuffer = 100

	aliveRune = '█'
	deadRune  = ' '
)

var styles = map[model.Color]tcell.Style{
	model.ColorDead:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack),
	model.ColorAlive:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	model.ColorGridLine: tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)

// Screen is a terminal window implementing model.Surface and app.EventSource
type Screen struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	once    sync.Once
	buttons tcell.ButtonMask
	width   int
	height  int
	title   string
}

// Open initializes the terminal for a board of the configured size
func Open(cfg utils.Config) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[Open] failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[Open] failed to initialize terminal screen")
	}
	s, err := New(screen, cfg.Width/cfg.CellSize, cfg.Height/cfg.CellSize)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return s, nil
}

// New wraps an initialized tcell screen showing a board of at most cols x
// rows cells. The board shrinks to fit the terminal, keeping the last line
// for the status text.
func New(screen tcell.Screen, cols, rows int) (*Screen, error) {
	termCols, termRows := screen.Size()
	cols = min(cols, termCols/cellColumns)
	rows = min(rows, termRows-1)
	if cols < 1 || rows < 1 {
		return nil, errors.Errorf("[New] terminal %dx%d is too small for the board", termCols, termRows)
	}

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
		width:  cols * cellColumns,
		height: rows,
	}
	go s.readEvents()
	return s, nil
}

// readEvents moves blocking tcell polls off the loop goroutine
func (s *Screen) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// View returns the cell geometry in terminal cells
func (s *Screen) View() model.View {
	return model.View{CellW: cellColumns, CellH: 1}
}

// Size returns the board area in terminal cells
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// FillRect paints a rectangle of terminal cells
func (s *Screen) FillRect(r model.Rect, c model.Color) error {
	style, ok := styles[c]
	if !ok {
		return errors.Errorf("[FillRect] unknown color %d", c)
	}
	ch := deadRune
	if c == model.ColorAlive {
		ch = aliveRune
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}
	return nil
}

// SetTitle sets the status line drawn under the board
func (s *Screen) SetTitle(title string) {
	s.title = title
}

// Present draws the status line and flushes the frame to the terminal
func (s *Screen) Present() error {
	cols, _ := s.screen.Size()
	x := 0
	for _, r := range s.title {
		if x >= cols {
			break
		}
		s.screen.SetContent(x, s.height, r, nil, statusStyle)
		x++
	}
	for ; x < cols; x++ {
		s.screen.SetContent(x, s.height, ' ', nil, tcell.StyleDefault)
	}
	s.screen.Show()
	return nil
}

// PollEvent returns the next pending input without blocking
func (s *Screen) PollEvent() (app.Event, bool) {
	for {
		select {
		case ev := <-s.events:
			if out, ok := s.translate(ev); ok {
				return out, true
			}
		default:
			return app.Event{}, false
		}
	}
}

// translate turns a tcell event into a game event. Mouse reports carry the
// button state, so a press is a transition from released to pressed.
func (s *Screen) translate(ev tcell.Event) (app.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return app.Event{Kind: app.KeyDown, Key: app.KeyQuit}, true
		case tcell.KeyRune:
			return app.Event{Kind: app.KeyDown, Key: app.KeyForRune(ev.Rune())}, true
		default:
			return app.Event{Kind: app.KeyDown, Key: app.KeyOther}, true
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0
		s.buttons = buttons
		if !pressed {
			return app.Event{}, false
		}
		x, y := ev.Position()
		return app.Event{Kind: app.PointerDown, X: x, Y: y}, true

	case *tcell.EventResize:
		s.screen.Sync()
		return app.Event{}, false
	}
	return app.Event{}, false
}

// Close restores the terminal
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}
