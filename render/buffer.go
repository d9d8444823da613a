package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Extent is a measured text bounding box in surface pixels
type Extent struct {
	Width, Height int
}

// Typesetter measures and rasterizes text for off-screen buffers
type Typesetter interface {
	Measure(text string, size float64, family string) Extent
	// Paint draws text into dst with its vertical middle on middleY
	Paint(dst draw.Image, text string, size float64, family string, fill color.Color, middleY int)
}

// TextBuffer is pre-rendered text, immutable once built
// Text and Fill are kept for surfaces that draw native text (terminal)
type TextBuffer struct {
	Text  string
	Size  float64
	Fill  Color
	Image *image.RGBA
}

// Bounds returns the buffer dimensions
func (b *TextBuffer) Bounds() Extent {
	r := b.Image.Bounds()
	return Extent{Width: r.Dx(), Height: r.Dy()}
}

// RenderTextBuffer measures text once, allocates a buffer of exactly that size
// and paints the text with its middle on height/2
func RenderTextBuffer(ts Typesetter, text string, size float64, family string, fill Color) *TextBuffer {
	m := ts.Measure(text, size, family)
	w, h := max(m.Width, 1), max(m.Height, 1)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ts.Paint(img, text, size, family, fill, h/2)

	return &TextBuffer{
		Text:  text,
		Size:  size,
		Fill:  fill,
		Image: img,
	}
}
