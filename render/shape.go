package render

import "github.com/lixenwraith/fountain/vmath"

// ShapeKind tags the Shape variants
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota
	ShapeCircle
	ShapeGlyph
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	case ShapeGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// Shape is an immutable visual with a single draw operation
type Shape interface {
	Kind() ShapeKind
	Draw(s Surface, pos vmath.Vec2)
}

// --- Rectangle ---

// RectangleStyle is anchored at its top-left corner
type RectangleStyle struct {
	Width, Height float64
	BorderWidth   float64
	Fill, Border  Color
}

// DefaultRectangleStyle is a 30x30 pastel blue box
func DefaultRectangleStyle() RectangleStyle {
	return RectangleStyle{
		Width:       30,
		Height:      30,
		BorderWidth: 5,
		Fill:        Color{R: 200, G: 220, B: 255, A: 0.9},
		Border:      Color{R: 80, G: 80, B: 155, A: 0.9},
	}
}

type Rectangle struct {
	style RectangleStyle
}

func NewRectangle(style RectangleStyle) *Rectangle {
	return &Rectangle{style: style}
}

func (r *Rectangle) Kind() ShapeKind       { return ShapeRectangle }
func (r *Rectangle) Style() RectangleStyle { return r.style }

// Draw fills then strokes the box
func (r *Rectangle) Draw(s Surface, pos vmath.Vec2) {
	st := &r.style
	s.FillRect(pos.X, pos.Y, st.Width, st.Height, st.Fill)
	s.StrokeRect(pos.X, pos.Y, st.Width, st.Height, st.BorderWidth, st.Border)
}

// --- Circle ---

// CircleStyle is anchored at its center
type CircleStyle struct {
	Radius       float64
	BorderWidth  float64
	Fill, Border Color
}

// DefaultCircleStyle is a radius 20 pastel purple disc
func DefaultCircleStyle() CircleStyle {
	return CircleStyle{
		Radius:      20,
		BorderWidth: 5,
		Fill:        Color{R: 250, G: 220, B: 255, A: 0.9},
		Border:      Color{R: 155, G: 80, B: 155, A: 0.9},
	}
}

type Circle struct {
	style CircleStyle
}

func NewCircle(style CircleStyle) *Circle {
	return &Circle{style: style}
}

func (c *Circle) Kind() ShapeKind    { return ShapeCircle }
func (c *Circle) Style() CircleStyle { return c.style }

// Draw fills the disc then strokes its outline, pos is the center
func (c *Circle) Draw(s Surface, pos vmath.Vec2) {
	st := &c.style
	s.FillCircle(pos.X, pos.Y, st.Radius, st.Fill)
	s.StrokeCircle(pos.X, pos.Y, st.Radius, st.BorderWidth, st.Border)
}

// --- Glyph ---

// GlyphStyle describes stamped text; Family falls back to the typesetter default when unknown
type GlyphStyle struct {
	Text   string
	Size   float64
	Family string
	Fill   Color
}

func DefaultGlyphStyle() GlyphStyle {
	return GlyphStyle{
		Text:   "M",
		Size:   20,
		Fill:   Opaque(250, 220, 255),
		Family: "",
	}
}

// Glyph owns one pre-rendered buffer for its whole lifetime
type Glyph struct {
	style  GlyphStyle
	buffer *TextBuffer
}

// NewGlyph rasterizes the text once; Draw only blits the result
func NewGlyph(ts Typesetter, style GlyphStyle) *Glyph {
	return &Glyph{
		style:  style,
		buffer: RenderTextBuffer(ts, style.Text, style.Size, style.Family, style.Fill),
	}
}

func (g *Glyph) Kind() ShapeKind     { return ShapeGlyph }
func (g *Glyph) Style() GlyphStyle   { return g.style }
func (g *Glyph) Buffer() *TextBuffer { return g.buffer }

// Draw blits the cached buffer, pos is the top-left corner
func (g *Glyph) Draw(s Surface, pos vmath.Vec2) {
	s.DrawBuffer(g.buffer, pos.X, pos.Y)
}
