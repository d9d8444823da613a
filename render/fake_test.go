package render

import (
	"fmt"
	"image/color"
	"image/draw"
)

// recordingSurface logs every draw call as a formatted string
type recordingSurface struct {
	w, h    int
	calls   []string
	buffers []*TextBuffer
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }
func (s *recordingSurface) Clear()           { s.calls = append(s.calls, "clear") }

func (s *recordingSurface) FillRect(x, y, w, h float64, c Color) {
	s.calls = append(s.calls, fmt.Sprintf("fillRect %g,%g %gx%g %v", x, y, w, h, c))
}

func (s *recordingSurface) StrokeRect(x, y, w, h, lw float64, c Color) {
	s.calls = append(s.calls, fmt.Sprintf("strokeRect %g,%g %gx%g lw=%g %v", x, y, w, h, lw, c))
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c Color) {
	s.calls = append(s.calls, fmt.Sprintf("fillCircle %g,%g r=%g %v", cx, cy, r, c))
}

func (s *recordingSurface) StrokeCircle(cx, cy, r, lw float64, c Color) {
	s.calls = append(s.calls, fmt.Sprintf("strokeCircle %g,%g r=%g lw=%g %v", cx, cy, r, lw, c))
}

func (s *recordingSurface) DrawBuffer(buf *TextBuffer, x, y float64) {
	s.calls = append(s.calls, fmt.Sprintf("drawBuffer %q %g,%g", buf.Text, x, y))
	s.buffers = append(s.buffers, buf)
}

// countingTypesetter measures with a fixed advance and counts calls
type countingTypesetter struct {
	measures int
	paints   int
	middleY  int
}

func (c *countingTypesetter) Measure(text string, size float64, family string) Extent {
	c.measures++
	return Extent{Width: len([]rune(text)) * int(size/2), Height: int(size)}
}

func (c *countingTypesetter) Paint(dst draw.Image, text string, size float64, family string, fill color.Color, middleY int) {
	c.paints++
	c.middleY = middleY
	dst.Set(0, middleY, fill)
}
