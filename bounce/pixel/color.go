package pixel

import "github.com/valerio/go-bounce/bounce/surface"

// Color is an unpacked 8-bit-per-channel color.
type Color struct {
	R, G, B, A uint8
}

// Default scene colors, matching the dark blue background and light blue
// circle used across the tutorial phases.
var (
	BackgroundColor = Color{R: 20, G: 20, B: 30, A: 255}
	CircleColor     = Color{R: 100, G: 150, B: 255, A: 255}
)

// Pack encodes the color as a 32-bit cell in the given byte order.
func (c Color) Pack(f surface.Format) uint32 {
	if f == surface.FormatRGBA8888 {
		return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
	}
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack decodes a 32-bit cell packed in the given byte order.
func Unpack(f surface.Format, p uint32) Color {
	if f == surface.FormatRGBA8888 {
		return Color{
			R: uint8(p),
			G: uint8(p >> 8),
			B: uint8(p >> 16),
			A: uint8(p >> 24),
		}
	}
	return Color{
		A: uint8(p >> 24),
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}
