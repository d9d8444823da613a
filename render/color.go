package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is 8-bit RGB with a straight (non-premultiplied) alpha in [0,1]
// Implements color.Color so it can be handed to image and ebiten APIs directly
type Color struct {
	R, G, B uint8
	A       float64
}

// Opaque returns a fully opaque color
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Black is the background both hosts clear to
var Black = Opaque(0, 0, 0)

// RGBA implements color.Color with alpha-premultiplied 16-bit channels
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := c.clampedAlpha()
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// Over composites c onto an opaque dst: result = c*alpha + dst*(1-alpha)
func (c Color) Over(dst Color) Color {
	alpha := c.clampedAlpha()
	if alpha >= 1 {
		return Opaque(c.R, c.G, c.B)
	}
	if alpha <= 0 {
		return Opaque(dst.R, dst.G, dst.B)
	}
	r, g, b := dst.colorful().BlendRgb(c.colorful(), alpha).RGB255()
	return Opaque(r, g, b)
}

// String renders the CSS-style rgba() form, used in logs
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, c.A)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func (c Color) clampedAlpha() float64 {
	return min(max(c.A, 0), 1)
}
