package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-shooter/internal/core"
)

// DefaultHoldTicks is how long a key stays held after its last press
// event when the config does not say otherwise.
const DefaultHoldTicks = 8

// Surface implements shooter.Surface for a terminal. Terminals only report
// presses, so a key reads as held for holdTicks presented frames after
// its most recent press; auto-repeat keeps it alive while the key is down.
//
// The Bubble Tea program writes input state and the game loop reads it,
// so every field is guarded by mu.
type Surface struct {
	mu sync.Mutex

	width     int
	height    int
	cols      int
	rows      int
	holdTicks int

	held      map[core.Key]int
	fire      int
	mouseDown bool
	mouseSeen bool
	mouseX    float64
	mouseY    float64

	quit   bool
	closed bool

	renderer *Renderer
	send     func(tea.Msg)
}

// NewSurface creates a terminal surface for width×height frames shown in
// cols×rows cells.
func NewSurface(width, height, cols, rows, holdTicks int) *Surface {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Surface{
		width:     width,
		height:    height,
		cols:      max(cols, 1),
		rows:      max(rows, 1),
		holdTicks: holdTicks,
		held:      make(map[core.Key]int),
		renderer:  NewRenderer(),
	}
}

// IsOpen reports whether the terminal program is still running.
func (s *Surface) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// ShouldQuit reports whether a quit key was pressed.
func (s *Surface) ShouldQuit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit
}

// KeyDown reports whether a key was pressed within the hold window.
func (s *Surface) KeyDown(k core.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[k] > 0
}

// MouseButtonDown reports the left button, or space within its hold window.
func (s *Surface) MouseButtonDown(b core.MouseButton) bool {
	if b != core.MouseButtonLeft {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouseDown || s.fire > 0
}

// MousePosition returns the last reported cursor in framebuffer pixels.
// It is unavailable until the terminal has sent a mouse event.
func (s *Surface) MousePosition() (float64, float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mouseSeen {
		return 0, 0, false
	}
	return s.mouseX, s.mouseY, true
}

// Present renders the frame to cells, ages held keys by one tick and
// hands the text to the program.
func (s *Surface) Present(buf []uint32, width, height int) error {
	if width != s.width || height != s.height {
		return fmt.Errorf("tui: %w: frame is %dx%d, surface is %dx%d",
			core.ErrBufferSize, width, height, s.width, s.height)
	}
	if err := core.ValidateBuffer(buf, width, height); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	s.mu.Lock()
	view := s.renderer.Render(buf, width, height, s.cols, s.rows)
	for k, n := range s.held {
		if n <= 1 {
			delete(s.held, k)
		} else {
			s.held[k] = n - 1
		}
	}
	if s.fire > 0 {
		s.fire--
	}
	send := s.send
	s.mu.Unlock()

	if send != nil {
		send(FrameMsg(view))
	}
	return nil
}

func (s *Surface) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *Surface) press(k core.Key) {
	s.mu.Lock()
	s.held[k] = s.holdTicks
	s.mu.Unlock()
}

func (s *Surface) pressFire() {
	s.mu.Lock()
	s.fire = s.holdTicks
	s.mu.Unlock()
}

// moveMouse records a cursor cell, converted to the pixel at its center.
func (s *Surface) moveMouse(col, row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col = core.Clamp(col, 0, s.cols-1)
	row = core.Clamp(row, 0, s.rows-1)
	s.mouseX = float64(sample(col, s.cols, s.width))
	s.mouseY = float64(sample(row, s.rows, s.height))
	s.mouseSeen = true
}

func (s *Surface) setMouseDown(down bool) {
	s.mu.Lock()
	s.mouseDown = down
	s.mu.Unlock()
}

func (s *Surface) resize(cols, rows int) {
	s.mu.Lock()
	s.cols = max(cols, 1)
	s.rows = max(rows, 1)
	s.mu.Unlock()
}

func (s *Surface) requestQuit() {
	s.mu.Lock()
	s.quit = true
	s.mu.Unlock()
}

func (s *Surface) markClosed() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
