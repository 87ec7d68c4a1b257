package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA8 stores explicit 8-bit color channels with straight alpha
type RGBA8 struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	White     = RGBA8{255, 255, 255, 255}
	Black     = RGBA8{0, 0, 0, 255}
	Grey      = RGBA8{128, 128, 128, 255}
	DarkGrey  = RGBA8{60, 60, 60, 255}
	Red       = RGBA8{255, 0, 0, 255}
	Green     = RGBA8{0, 255, 0, 255}
	Blue      = RGBA8{0, 0, 255, 255}
	Yellow    = RGBA8{255, 255, 0, 255}
	Cyan      = RGBA8{0, 255, 255, 255}
	Magenta   = RGBA8{255, 0, 255, 255}
	Orange    = RGBA8{255, 150, 50, 255}
	LightBlue = RGBA8{140, 190, 255, 255}
	DarkBlue  = RGBA8{20, 30, 140, 255}
	WallBlue  = RGBA8{32, 26, 96, 255}

	// Background fills untouched raster cells, Tokyo Night
	Background = RGBA8{26, 27, 38, 255}
)

func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// WithAlpha returns the color with alpha replaced
func (c RGBA8) WithAlpha(a uint8) RGBA8 {
	c.A = a
	return c
}

// Scale multiplies RGB by f, alpha untouched
func (c RGBA8) Scale(f float64) RGBA8 {
	return RGBA8{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f), c.A}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha), result is opaque
func (dst RGBA8) Blend(src RGBA8, alpha float64) RGBA8 {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src.WithAlpha(255)
	}
	inv := 1.0 - alpha
	return RGBA8{
		R: clamp(float64(src.R)*alpha + float64(dst.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(dst.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(dst.B)*inv),
		A: 255,
	}
}

// Over composites src onto dst using src alpha
func (dst RGBA8) Over(src RGBA8) RGBA8 {
	return dst.Blend(src, float64(src.A)/255.0)
}

// Max returns per-channel maximum
func (dst RGBA8) Max(src RGBA8) RGBA8 {
	return RGBA8{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
		A: max(dst.A, src.A),
	}
}

// Lerp interpolates every channel linearly
func Lerp(a, b RGBA8, t float64) RGBA8 {
	l := func(x, y uint8) uint8 {
		return clamp(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGBA8{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

// FromColorful converts with the given alpha
func FromColorful(c colorful.Color, a uint8) RGBA8 {
	r, g, b := c.Clamped().RGB255()
	return RGBA8{r, g, b, a}
}

func (c RGBA8) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromZeroToOne maps 0 to red and 1 to green through Lab space
func FromZeroToOne(t float64) RGBA8 {
	red := colorful.Color{R: 1}
	green := colorful.Color{G: 1}
	return FromColorful(red.BlendLab(green, t), 255)
}
