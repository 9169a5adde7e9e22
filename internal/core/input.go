package core

// Key identifies a keyboard key the shooter cares about.
// Surfaces translate their native key codes into these values.
type Key int

const (
	KeyNone   Key = iota
	KeyW          // move up
	KeyA          // move left
	KeyS          // move down
	KeyD          // move right
	KeyLeft       // rotate counter-clockwise
	KeyRight      // rotate clockwise
	KeyEscape     // quit
)

// HeldKeys lists the keys sampled every tick for movement and rotation.
var HeldKeys = []Key{KeyW, KeyA, KeyS, KeyD, KeyLeft, KeyRight}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	default:
		return "None"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// InputFrame is the input state sampled for one simulation tick.
// Keys are level-triggered: a key present in Held is down for the whole tick.
type InputFrame struct {
	Held map[Key]bool

	// Fire is true while the fire button is down.
	Fire bool

	// CursorX and CursorY hold the cursor position in pixels, already
	// clamped to the display area. They are (0, 0) when unavailable.
	CursorX, CursorY float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Key]bool),
	}
}

// Press marks a key as held for this frame.
func (f *InputFrame) Press(k Key) {
	if f.Held == nil {
		f.Held = make(map[Key]bool)
	}
	f.Held[k] = true
}

// Down returns true if the given key is held this frame.
func (f InputFrame) Down(k Key) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[k]
}

// Aim sets the fire button and the cursor sample together.
func (f *InputFrame) Aim(x, y float64) {
	f.Fire = true
	f.CursorX = x
	f.CursorY = y
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Fire = false
	f.CursorX, f.CursorY = 0, 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Fire = f.Fire
	clone.CursorX, clone.CursorY = f.CursorX, f.CursorY
	return clone
}
