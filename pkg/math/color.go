package math

import "math"

// Color is an RGB colour with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Hex builds a colour from a 0xRRGGBB literal.
func Hex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xFF) / 255,
		G: float32((hex>>8)&0xFF) / 255,
		B: float32(hex&0xFF) / 255,
	}
}

// Hex returns the colour as a 0xRRGGBB literal.
func (c Color) Hex() uint32 {
	to8 := func(v float32) uint32 { return uint32(Clamp(v, 0, 1)*255 + 0.5) }
	return to8(c.R)<<16 | to8(c.G)<<8 | to8(c.B)
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Add sums two colours channel-wise.
func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }

// Linear converts an encoded colour to linear space with the given gamma.
func (c Color) Linear(gamma float32) Color {
	g := float64(gamma)
	return Color{
		R: float32(math.Pow(float64(c.R), g)),
		G: float32(math.Pow(float64(c.G), g)),
		B: float32(math.Pow(float64(c.B), g)),
	}
}

// Array returns the channels for uniform upload.
func (c Color) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }
