package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/fountain/parameter"
)

// FallbackFamily is the family a system emoji/symbol font is registered under
const FallbackFamily = "fallback"

// fallbackFontPaths are monochrome emoji and symbol fonts tried in order; the first readable one wins
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/noto/NotoEmoji-Regular.ttf",
	"/usr/share/fonts/noto/NotoEmoji-Regular.ttf",
	"/usr/share/fonts/google-noto-emoji/NotoEmoji-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoEmoji-VariableFont_wght.ttf",
	"/usr/share/fonts/truetype/ancient-scripts/Symbola_hint.ttf",
	"/usr/share/fonts/TTF/Symbola.ttf",
	"/usr/share/fonts/gdouros-symbola/Symbola.ttf",
	"/Library/Fonts/Symbola.ttf",
	`C:\Windows\Fonts\seguisym.ttf`,
}

type faceKey struct {
	family string
	size   float64
}

// textRun is a span of text drawn with one family
type textRun struct {
	family string
	text   string
}

// FontBook is the production Typesetter backed by OpenType fonts
// Faces are created lazily once per (family, size) and live for the process lifetime
// Runes the requested family lacks are drawn from FallbackFamily when it covers them
// Not safe for concurrent use; only the frame goroutine touches it
type FontBook struct {
	fonts   map[string]*opentype.Font
	faces   map[faceKey]font.Face
	missing map[rune]struct{}
	glyphs  sfnt.Buffer
}

// NewFontBook creates a book with Go Regular registered as parameter.DefaultFontFamily
// and the first system emoji font found registered as FallbackFamily
func NewFontBook() (*FontBook, error) {
	return newFontBook(fallbackFontPaths)
}

func newFontBook(fallbackPaths []string) (*FontBook, error) {
	b := &FontBook{
		fonts:   make(map[string]*opentype.Font),
		faces:   make(map[faceKey]font.Face),
		missing: make(map[rune]struct{}),
	}
	if err := b.Register(parameter.DefaultFontFamily, goregular.TTF); err != nil {
		return nil, err
	}

	for _, path := range fallbackPaths {
		if err := b.RegisterFile(FallbackFamily, path); err == nil {
			log.Printf("fallback font: %s", path)
			return b, nil
		}
	}
	log.Printf("no emoji fallback font found, emoji outside %s render as missing glyphs", parameter.DefaultFontFamily)
	return b, nil
}

// Register parses an OpenType/TrueType font and makes it available under family
func (b *FontBook) Register(family string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", family, err)
	}
	b.fonts[family] = f
	// Drop faces cached for a replaced family
	for k := range b.faces {
		if k.family == family {
			delete(b.faces, k)
		}
	}
	clear(b.missing)
	return nil
}

// RegisterFile loads a font file from disk under family
func (b *FontBook) RegisterFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font file: %w", err)
	}
	return b.Register(family, data)
}

// Has reports whether family is registered
func (b *FontBook) Has(family string) bool {
	_, ok := b.fonts[family]
	return ok
}

// Covers reports whether family has a real glyph for r
func (b *FontBook) Covers(family string, r rune) bool {
	f, ok := b.fonts[family]
	if !ok {
		return false
	}
	idx, err := f.GlyphIndex(&b.glyphs, r)
	return err == nil && idx != 0
}

// Measure returns advance width (rounded up) by line height, line height equals the font size
func (b *FontBook) Measure(text string, size float64, family string) Extent {
	var width fixed.Int26_6
	for _, run := range b.runs(text, family) {
		width += font.MeasureString(b.face(run.family, size), run.text)
	}
	return Extent{
		Width:  width.Ceil(),
		Height: int(math.Ceil(size)),
	}
}

// Paint draws text with its visual middle on middleY
func (b *FontBook) Paint(dst draw.Image, text string, size float64, family string, fill color.Color, middleY int) {
	src := image.NewUniform(fill)
	x := fixed.I(0)
	for _, run := range b.runs(text, family) {
		face := b.face(run.family, size)
		m := face.Metrics()

		d := font.Drawer{
			Dst:  dst,
			Src:  src,
			Face: face,
			Dot:  fixed.Point26_6{X: x, Y: fixed.I(middleY) + (m.Ascent-m.Descent)/2},
		}
		d.DrawString(run.text)
		x = d.Dot.X
	}
}

// runs splits text into spans by the family that covers each rune
func (b *FontBook) runs(text, family string) []textRun {
	if !b.Has(family) {
		family = parameter.DefaultFontFamily
	}

	var out []textRun
	for _, r := range text {
		fam := b.resolve(family, r)
		if n := len(out); n > 0 && out[n-1].family == fam {
			out[n-1].text += string(r)
			continue
		}
		out = append(out, textRun{family: fam, text: string(r)})
	}
	return out
}

// resolve picks family if it covers r, then FallbackFamily; otherwise family draws its missing glyph
func (b *FontBook) resolve(family string, r rune) string {
	if b.Covers(family, r) {
		return family
	}
	if family != FallbackFamily && b.Covers(FallbackFamily, r) {
		return FallbackFamily
	}
	if _, seen := b.missing[r]; !seen {
		b.missing[r] = struct{}{}
		log.Printf("no font covers %U, drawing missing glyph", r)
	}
	return family
}

func (b *FontBook) face(family string, size float64) font.Face {
	if _, ok := b.fonts[family]; !ok {
		family = parameter.DefaultFontFamily
	}
	key := faceKey{family: family, size: size}
	if face, ok := b.faces[key]; ok {
		return face
	}

	face, err := opentype.NewFace(b.fonts[family], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("font face %s@%.0f unavailable, using fixed 7x13: %v", family, size, err)
		face = basicfont.Face7x13
	}
	b.faces[key] = face
	return face
}
