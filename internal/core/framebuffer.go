package core

import (
	"errors"
	"fmt"
)

// ErrBufferSize is returned when a pixel buffer does not match the
// dimensions it is presented with.
var ErrBufferSize = errors.New("pixel buffer size mismatch")

// Framebuffer is a flat row-major pixel buffer with a top-left origin.
// Each element is a Color packed as 0xRRGGBB.
type Framebuffer struct {
	width  int
	height int
	pixels []uint32
}

// NewFramebuffer creates a black framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Bounds returns the framebuffer area as a rectangle at the origin.
func (f *Framebuffer) Bounds() Rect {
	return Rect{W: f.width, H: f.height}
}

// Pixels returns the underlying buffer. Callers must not retain it across
// frames if they need a stable copy.
func (f *Framebuffer) Pixels() []uint32 {
	return f.pixels
}

// Clear fills the entire buffer with one color.
func (f *Framebuffer) Clear(c Color) {
	v := uint32(c.Normalize())
	for i := range f.pixels {
		f.pixels[i] = v
	}
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) Set(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = uint32(c.Normalize())
}

// At returns the pixel at (x, y), or black for out-of-bounds coordinates.
func (f *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorBlack
	}
	return Color(f.pixels[y*f.width+x])
}

// FillRect fills a rectangle, clipped to the buffer.
func (f *Framebuffer) FillRect(r Rect, c Color) {
	clip := r.Intersect(f.Bounds())
	if clip.Empty() {
		return
	}
	v := uint32(c.Normalize())
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := f.pixels[y*f.width : (y+1)*f.width]
		for x := clip.X; x < clip.Right(); x++ {
			row[x] = v
		}
	}
}

// Count returns how many pixels hold exactly the given color.
func (f *Framebuffer) Count(c Color) int {
	v := uint32(c.Normalize())
	n := 0
	for _, p := range f.pixels {
		if p == v {
			n++
		}
	}
	return n
}

// ValidateBuffer checks that buf holds exactly width*height pixels.
func ValidateBuffer(buf []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(buf) != width*height {
		return fmt.Errorf("%w: got %d pixels for %dx%d", ErrBufferSize, len(buf), width, height)
	}
	return nil
}
