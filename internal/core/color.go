package core

// Color is a pixel value packing 0xRRGGBB in the low 24 bits.
// The high byte is unused and always zero.
type Color uint32

// Predefined colors for game elements.
const (
	ColorBlack Color = 0x000000
	ColorRed   Color = 0xFF0000
	ColorGreen Color = 0x00FF00
	ColorBlue  Color = 0x0000FF
	ColorWhite Color = 0xFFFFFF
)

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB unpacks the color into its 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Normalize drops anything stored above the low 24 bits.
func (c Color) Normalize() Color {
	return c & 0xFFFFFF
}

// ToRGBA expands 0xRRGGBB pixels into opaque 8-bit RGBA bytes, the layout
// image.RGBA and GPU textures expect. dst must hold 4 bytes per pixel.
func ToRGBA(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
}
