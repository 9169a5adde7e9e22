// Package headless provides a display surface without a window. Input
// comes from a script and presented frames are kept in memory, which makes
// it suitable for tests, demos and benchmarks.
package headless

import (
	"fmt"

	"github.com/vovakirdan/square-shooter/internal/core"
)

// Script returns the input for a given frame, counted from zero.
type Script func(frame uint64) core.InputFrame

// Idle is a script with nothing pressed.
func Idle(uint64) core.InputFrame {
	return core.NewInputFrame()
}

// Steps replays the given frames in order and is idle afterwards.
func Steps(frames ...core.InputFrame) Script {
	return func(frame uint64) core.InputFrame {
		if frame >= uint64(len(frames)) {
			return core.NewInputFrame()
		}
		return frames[frame]
	}
}

// Sweep fires every n frames at a cursor that sweeps the screen, while
// rotating clockwise. n <= 0 never fires.
func Sweep(width, height, n int) Script {
	return func(frame uint64) core.InputFrame {
		in := core.NewInputFrame()
		in.Press(core.KeyRight)
		if n > 0 && frame%uint64(n) == 0 {
			f := int(frame)
			in.Aim(float64(f*7%width), float64(f*3%height))
		}
		return in
	}
}

// Config controls a headless surface.
type Config struct {
	Width  int
	Height int
	Frames uint64 // Close after this many presented frames (0 = never)
	Script Script
}

// Surface is a scripted, in-memory display surface.
type Surface struct {
	cfg     Config
	frames  uint64
	current core.InputFrame
	last    []uint32
	closed  bool
}

// New creates a headless surface. A nil script is idle.
func New(cfg Config) (*Surface, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("headless: invalid surface size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Script == nil {
		cfg.Script = Idle
	}
	s := &Surface{
		cfg:  cfg,
		last: make([]uint32, cfg.Width*cfg.Height),
	}
	s.current = cfg.Script(0)
	return s, nil
}

// IsOpen reports whether the frame budget is not yet spent.
func (s *Surface) IsOpen() bool {
	if s.closed {
		return false
	}
	return s.cfg.Frames == 0 || s.frames < s.cfg.Frames
}

// ShouldQuit reports whether Close was called.
func (s *Surface) ShouldQuit() bool {
	return s.closed
}

// Close makes the loop stop at its next check.
func (s *Surface) Close() {
	s.closed = true
}

// KeyDown reports keys held in the current scripted frame.
func (s *Surface) KeyDown(k core.Key) bool {
	return s.current.Down(k)
}

// MouseButtonDown reports the scripted fire button.
func (s *Surface) MouseButtonDown(b core.MouseButton) bool {
	return b == core.MouseButtonLeft && s.current.Fire
}

// MousePosition returns the scripted cursor, clamped to the surface.
func (s *Surface) MousePosition() (float64, float64, bool) {
	x := core.ClampF(s.current.CursorX, 0, float64(s.cfg.Width-1))
	y := core.ClampF(s.current.CursorY, 0, float64(s.cfg.Height-1))
	return x, y, true
}

// Present copies the buffer and moves the script to the next frame.
func (s *Surface) Present(buf []uint32, width, height int) error {
	if width != s.cfg.Width || height != s.cfg.Height {
		return fmt.Errorf("headless: %w: frame is %dx%d, surface is %dx%d",
			core.ErrBufferSize, width, height, s.cfg.Width, s.cfg.Height)
	}
	if err := core.ValidateBuffer(buf, width, height); err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	copy(s.last, buf)
	s.frames++
	s.current = s.cfg.Script(s.frames)
	return nil
}

// Frames returns how many frames were presented.
func (s *Surface) Frames() uint64 {
	return s.frames
}

// LastFrame returns a copy of the most recently presented buffer.
func (s *Surface) LastFrame() []uint32 {
	out := make([]uint32, len(s.last))
	copy(out, s.last)
	return out
}
