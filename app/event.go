package app

// EventKind says what happened in the host window
type EventKind int

const (
	PointerDown EventKind = iota + 1
	KeyDown
	Tick
	Quit
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case KeyDown:
		return "key-down"
	case Tick:
		return "tick"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Key is a command key, already translated from the backend's key codes
type Key int

const (
	KeyOther Key = iota
	KeyToggleRun
	KeyQuit
	KeyStep
	KeyClear
	KeyRandomize
)

// Event is one input from the host window. X and Y are surface
// coordinates for PointerDown; Key is set for KeyDown.
type Event struct {
	Kind EventKind
	X, Y int
	Key  Key
}

// EventSource is the input side of a window. PollEvent never blocks; it
// reports false when no event is pending.
type EventSource interface {
	PollEvent() (Event, bool)
}

// KeyForRune maps the letter shortcuts shared by every backend
func KeyForRune(r rune) Key {
	switch r {
	case ' ':
		return KeyToggleRun
	case 'n', 'N':
		return KeyStep
	case 'c', 'C':
		return KeyClear
	case 'r', 'R':
		return KeyRandomize
	case 'q', 'Q':
		return KeyQuit
	default:
		return KeyOther
	}
}
