package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/fountain/render"
)

// Surface draws onto the ebiten screen image bound for the current frame
type Surface struct {
	target        *ebiten.Image
	width, height int
	images        *imageCache[*ebiten.Image]
}

// NewSurface creates a surface with a fixed logical size
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		images: newImageCache(
			func(src *image.RGBA) *ebiten.Image { return ebiten.NewImageFromImage(src) },
			func(img *ebiten.Image) { img.Deallocate() },
		),
	}
}

// Bind sets the image drawn to until the next Bind
func (s *Surface) Bind(target *ebiten.Image) {
	s.target = target
}

// EndFrame releases text images that have not been drawn recently
func (s *Surface) EndFrame() {
	s.images.endFrame()
}

// Release frees all cached images
func (s *Surface) Release() {
	s.images.clear()
}

func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Resize changes the logical size, used for full-screen mode
func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *Surface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(color.Black)
}

func (s *Surface) FillRect(x, y, w, h float64, c render.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c render.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), c, true)
}

func (s *Surface) FillCircle(cx, cy, r float64, c render.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, c render.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeCircle(s.target, float32(cx), float32(cy), float32(r), float32(lineWidth), c, true)
}

// DrawBuffer blits the buffer's GPU copy, uploading it on first use
func (s *Surface) DrawBuffer(buf *render.TextBuffer, x, y float64) {
	if s.target == nil || buf == nil || buf.Image == nil {
		return
	}
	img := s.images.get(buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.target.DrawImage(img, op)
}
