package core

// Key is a semantic key press, abstracted from physical keys.
type Key int

const (
	KeyNone    Key = iota
	KeyUp          // Up arrow, W
	KeyDown        // Down arrow, S
	KeyLeft        // Left arrow, A
	KeyRight       // Right arrow, D
	KeyConfirm     // Enter
	KeyCancel      // Escape
	KeyPause       // P
	KeyHelp        // H
	KeyLevel1      // 1
	KeyLevel2      // 2
	KeyLevel3      // 3
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	case KeyPause:
		return "pause"
	case KeyHelp:
		return "help"
	case KeyLevel1:
		return "level1"
	case KeyLevel2:
		return "level2"
	case KeyLevel3:
		return "level3"
	default:
		return "unknown"
	}
}

// ParseKey converts a key name produced by Key.String back into a Key.
// Returns KeyNone and false for unknown names.
func ParseKey(name string) (Key, bool) {
	for k := KeyUp; k <= KeyLevel3; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return KeyNone, false
}

// EventKind discriminates input events.
type EventKind int

const (
	EventNone  EventKind = iota
	EventQuit            // Window closed, Ctrl+C, Q
	EventKey             // Key pressed
	EventClick           // Pointer clicked at (X, Y) in surface units
)

// Event is a single discrete input event.
type Event struct {
	Kind EventKind
	Key  Key // Set for EventKey
	X, Y int // Set for EventClick
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyEvent returns a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// ClickEvent returns a pointer click at the given surface position.
func ClickEvent(x, y int) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

// InputFrame collects the events observed during one frame, in arrival order.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev Event) {
	f.Events = append(f.Events, ev)
}

// Has returns true if a key event for k was recorded this frame.
func (f InputFrame) Has(k Key) bool {
	for _, ev := range f.Events {
		if ev.Kind == EventKey && ev.Key == k {
			return true
		}
	}
	return false
}

// Len returns the number of recorded events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Drain returns a copy of the recorded events and clears the frame.
func (f *InputFrame) Drain() []Event {
	out := make([]Event, len(f.Events))
	copy(out, f.Events)
	f.Clear()
	return out
}
