package termwin

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/app"
	"github.com/sheikhrachel/go-life/model"
)

func newTestScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(80, 24)
	s, err := New(sim, cols, rows)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Close)
	return s, sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestTranslateKeys(t *testing.T) {
	s, _ := newTestScreen(t, 10, 10)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want app.Key
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), app.KeyToggleRun},
		{"step", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), app.KeyStep},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.KeyQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), app.KeyQuit},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), app.KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := s.translate(tt.ev)
			if !ok || ev.Kind != app.KeyDown || ev.Key != tt.want {
				t.Errorf("translate(%s) = %+v, %v; want key %v", tt.name, ev, ok, tt.want)
			}
		})
	}
}

func TestTranslateMousePressOnce(t *testing.T) {
	s, _ := newTestScreen(t, 10, 10)

	ev, ok := s.translate(tcell.NewEventMouse(7, 3, tcell.Button1, tcell.ModNone))
	if !ok || ev != (app.Event{Kind: app.PointerDown, X: 7, Y: 3}) {
		t.Fatalf("expected pointer down at (7,3), got %+v %v", ev, ok)
	}

	// Dragging with the button held is not a new press
	if _, ok := s.translate(tcell.NewEventMouse(8, 3, tcell.Button1, tcell.ModNone)); ok {
		t.Error("held button should not produce another press")
	}

	if _, ok := s.translate(tcell.NewEventMouse(8, 3, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("release should not produce a press")
	}

	if _, ok := s.translate(tcell.NewEventMouse(8, 3, tcell.Button1, tcell.ModNone)); !ok {
		t.Error("press after release should be reported")
	}

	if _, ok := s.translate(tcell.NewEventMouse(8, 3, tcell.Button3, tcell.ModNone)); ok {
		t.Error("other buttons are ignored")
	}
}

func TestPollEventDeliversPostedEvents(t *testing.T) {
	s, sim := newTestScreen(t, 10, 10)

	if _, ok := s.PollEvent(); ok {
		t.Fatal("expected no pending events")
	}

	if err := sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := s.PollEvent(); ok {
			if ev.Kind != app.KeyDown || ev.Key != app.KeyToggleRun {
				t.Errorf("unexpected event %+v", ev)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("posted event never arrived")
}

func TestFillRectAndPresent(t *testing.T) {
	s, sim := newTestScreen(t, 5, 4)

	w, h := s.Size()
	if w != 10 || h != 4 {
		t.Fatalf("expected 10x4 board, got %dx%d", w, h)
	}

	r := model.NewRenderer(s, s.View(), w, h)
	g := model.NewGrid(5, 4, model.OffsetBounds)
	g.Set(1, 2, true)

	if err := r.DrawAll(g); err != nil {
		t.Fatalf("DrawAll: %v", err)
	}
	r.SetStatus("Life [PAUSED]")
	if err := r.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	if got := runeAt(sim, 4, 1); got != aliveRune {
		t.Errorf("expected live cell at column 4 row 1, got %q", got)
	}
	if got := runeAt(sim, 5, 1); got != aliveRune {
		t.Errorf("live cell should span two columns, got %q", got)
	}
	if got := runeAt(sim, 6, 1); got != deadRune {
		t.Errorf("expected dead cell at column 6 row 1, got %q", got)
	}

	status := make([]rune, 0, 13)
	for x := 0; x < 13; x++ {
		status = append(status, runeAt(sim, x, 4))
	}
	if string(status) != "Life [PAUSED]" {
		t.Errorf("unexpected status line %q", string(status))
	}
}

func TestNewFitsBoardToTerminal(t *testing.T) {
	// The default 800x800 config at cell size 20 asks for 40x40 cells
	s, sim := newTestScreen(t, 40, 40)

	w, h := s.Size()
	if w != 80 || h != 23 {
		t.Fatalf("expected 80x23 board on an 80x24 terminal, got %dx%d", w, h)
	}

	r := model.NewRenderer(s, s.View(), w, h)
	g := model.NewGridForView(w, h, s.View(), model.OffsetBounds)
	g.Set(g.Height()-1, g.Width()-1, true)

	if err := r.DrawAll(g); err != nil {
		t.Fatalf("DrawAll: %v", err)
	}
	r.SetStatus("Life")
	if err := r.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	if got := runeAt(sim, 79, 22); got != aliveRune {
		t.Errorf("bottom right cell should be on screen, got %q", got)
	}
	status := make([]rune, 0, 4)
	for x := 0; x < 4; x++ {
		status = append(status, runeAt(sim, x, 23))
	}
	if string(status) != "Life" {
		t.Errorf("status line should be on the last terminal row, got %q", string(status))
	}
}

func TestNewRejectsTinyTerminal(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(1, 1)

	if _, err := New(sim, 40, 40); err == nil {
		t.Error("expected an error when no board row fits above the status line")
	}
}

func TestFillRectRejectsUnknownColor(t *testing.T) {
	s, _ := newTestScreen(t, 5, 5)
	if err := s.FillRect(model.Rect{W: 1, H: 1}, model.Color(99)); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s, _ := newTestScreen(t, 5, 5)
	s.Close()
	s.Close()
}
