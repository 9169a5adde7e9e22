// Package window provides a desktop display surface backed by Ebitengine.
// Ebitengine owns the main loop, so the shooter loop is driven from the
// game's Update callback rather than from Loop.Run.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/square-shooter/internal/core"
	"github.com/vovakirdan/square-shooter/internal/shooter"
)

// Config describes the window.
type Config struct {
	Title    string
	Width    int // Framebuffer width in pixels
	Height   int // Framebuffer height in pixels
	Scale    int // Window pixels per framebuffer pixel
	TickRate int
}

var keyMap = map[core.Key]ebiten.Key{
	core.KeyW:      ebiten.KeyW,
	core.KeyA:      ebiten.KeyA,
	core.KeyS:      ebiten.KeyS,
	core.KeyD:      ebiten.KeyD,
	core.KeyLeft:   ebiten.KeyArrowLeft,
	core.KeyRight:  ebiten.KeyArrowRight,
	core.KeyEscape: ebiten.KeyEscape,
}

var buttonMap = map[core.MouseButton]ebiten.MouseButton{
	core.MouseButtonLeft:   ebiten.MouseButtonLeft,
	core.MouseButtonRight:  ebiten.MouseButtonRight,
	core.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// Surface implements shooter.Surface on top of Ebitengine's input and
// rendering. It must only be used from Ebitengine callbacks.
type Surface struct {
	width  int
	height int
	closed bool
	pix    []byte // RGBA copy of the last presented frame
	img    *ebiten.Image
}

func newSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// IsOpen reports whether the game loop is still running.
func (s *Surface) IsOpen() bool {
	return !s.closed
}

// ShouldQuit reports whether the user asked to close the window.
func (s *Surface) ShouldQuit() bool {
	return ebiten.IsWindowBeingClosed()
}

// KeyDown reports whether a key is held.
func (s *Surface) KeyDown(k core.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// MouseButtonDown reports whether a mouse button is held.
func (s *Surface) MouseButtonDown(b core.MouseButton) bool {
	eb, ok := buttonMap[b]
	return ok && ebiten.IsMouseButtonPressed(eb)
}

// MousePosition returns the cursor in framebuffer pixels. The position is
// unavailable while the window is unfocused.
func (s *Surface) MousePosition() (float64, float64, bool) {
	if !ebiten.IsFocused() {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return core.ClampF(float64(x), 0, float64(s.width-1)),
		core.ClampF(float64(y), 0, float64(s.height-1)), true
}

// Present converts the frame to RGBA; the next Draw uploads it.
func (s *Surface) Present(buf []uint32, width, height int) error {
	if width != s.width || height != s.height {
		return fmt.Errorf("window: %w: frame is %dx%d, window is %dx%d",
			core.ErrBufferSize, width, height, s.width, s.height)
	}
	if err := core.ValidateBuffer(buf, width, height); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	core.ToRGBA(s.pix, buf)
	return nil
}

type game struct {
	surface *Surface
	loop    *shooter.Loop
	err     error
}

func (g *game) Update() error {
	ok, err := g.loop.Tick()
	if err != nil {
		g.err = err
		return err
	}
	if !ok {
		g.surface.closed = true
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	s := g.surface
	if s.img == nil {
		s.img = ebiten.NewImage(s.width, s.height)
	}
	s.img.WritePixels(s.pix)
	screen.DrawImage(s.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.width, g.surface.height
}

// Run opens the window and blocks until the loop stops or the window is
// closed. newLoop receives the surface and builds the loop to drive.
// Errors from creating the window or presenting a frame are returned.
func Run(cfg Config, newLoop func(shooter.Surface) *shooter.Loop) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	s := newSurface(cfg.Width, cfg.Height)
	g := &game{surface: s, loop: newLoop(s)}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TickRate)

	err := ebiten.RunGame(g)
	s.closed = true
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil && g.err == nil {
		return fmt.Errorf("window: cannot run display: %w", err)
	}
	return err
}
