package shooter

import "github.com/vovakirdan/square-shooter/internal/core"

//go:generate go tool mockgen -source=surface.go -destination=mocks/surface_mock.go -package=mocks

// Surface is the display backend the loop samples input from and presents
// frames to. Implementations must answer every query without blocking.
type Surface interface {
	// IsOpen reports whether the surface can still show frames.
	IsOpen() bool
	// ShouldQuit reports a close request from the backend, such as the
	// window close button.
	ShouldQuit() bool
	// KeyDown reports whether a key is currently held.
	KeyDown(k core.Key) bool
	// MouseButtonDown reports whether a mouse button is currently held.
	MouseButtonDown(b core.MouseButton) bool
	// MousePosition returns the cursor position clamped to the surface.
	// ok is false when the backend has no cursor sample.
	MousePosition() (x, y float64, ok bool)
	// Present displays a row-major 0xRRGGBB buffer of width*height pixels.
	Present(buf []uint32, width, height int) error
}
