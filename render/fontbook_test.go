package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/fountain/parameter"
)

func newTestBook(t *testing.T) *FontBook {
	t.Helper()
	b, err := NewFontBook()
	if err != nil {
		t.Fatalf("Failed to create font book: %v", err)
	}
	return b
}

func TestFontBookMeasure(t *testing.T) {
	b := newTestBook(t)

	ext := b.Measure("A", 24, parameter.DefaultFontFamily)
	if ext.Width <= 0 {
		t.Errorf("Expected positive width, got %d", ext.Width)
	}
	if ext.Height != 24 {
		t.Errorf("Expected height equal to font size 24, got %d", ext.Height)
	}

	wide := b.Measure("AAAA", 24, parameter.DefaultFontFamily)
	if wide.Width <= ext.Width {
		t.Errorf("Expected longer text to measure wider: %d vs %d", wide.Width, ext.Width)
	}
}

func TestFontBookUnknownFamilyFallsBack(t *testing.T) {
	b := newTestBook(t)

	def := b.Measure("Hello", 30, parameter.DefaultFontFamily)
	unk := b.Measure("Hello", 30, "Arial")
	if def != unk {
		t.Errorf("Expected unknown family to measure like default, got %v vs %v", unk, def)
	}
	if b.Has("Arial") {
		t.Error("Expected Arial to be unregistered")
	}
}

func TestFontBookFaceCached(t *testing.T) {
	b := newTestBook(t)

	b.Measure("x", 40, parameter.DefaultFontFamily)
	b.Measure("y", 40, "missing")
	b.Measure("z", 41, parameter.DefaultFontFamily)

	if len(b.faces) != 2 {
		t.Errorf("Expected 2 cached faces, got %d", len(b.faces))
	}
}

func TestFontBookRegisterInvalid(t *testing.T) {
	b := newTestBook(t)
	if err := b.Register("broken", []byte("not a font")); err == nil {
		t.Error("Expected error registering invalid font data")
	}
	if err := b.RegisterFile("missing", "/nonexistent/font.ttf"); err == nil {
		t.Error("Expected error for missing font file")
	}
}

func TestFontBookPaint(t *testing.T) {
	b := newTestBook(t)
	buf := RenderTextBuffer(b, "M", 32, parameter.DefaultFontFamily, Opaque(255, 255, 255))

	if !hasInk(buf.Image) {
		t.Error("Expected painted pixels in text buffer")
	}
}

func hasInk(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return true
		}
	}
	return false
}

func TestFontBookEmojiUsesFallbackOrReportsMissing(t *testing.T) {
	b := newTestBook(t)
	rat := '\U0001F400'

	if b.Covers(parameter.DefaultFontFamily, rat) {
		t.Fatalf("Expected %s to lack %U", parameter.DefaultFontFamily, rat)
	}

	got := b.resolve(parameter.DefaultFontFamily, rat)
	if b.Has(FallbackFamily) && b.Covers(FallbackFamily, rat) {
		if got != FallbackFamily {
			t.Errorf("Expected %U drawn from %s, got %s", rat, FallbackFamily, got)
		}
		buf := RenderTextBuffer(b, string(rat), 48, parameter.DefaultFontFamily, Opaque(255, 255, 255))
		if !hasInk(buf.Image) {
			t.Error("Expected emoji glyph ink from fallback font")
		}
		return
	}

	if got != parameter.DefaultFontFamily {
		t.Errorf("Expected unresolved rune to stay on %s, got %s", parameter.DefaultFontFamily, got)
	}
	if _, ok := b.missing[rat]; !ok {
		t.Errorf("Expected %U recorded as missing", rat)
	}
}

func TestFontBookFallbackFromPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatalf("Failed to write font: %v", err)
	}

	b, err := newFontBook([]string{"/nonexistent/emoji.ttf", path})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !b.Has(FallbackFamily) {
		t.Error("Expected first readable path registered as fallback")
	}
	if !b.Covers(FallbackFamily, 'A') {
		t.Error("Expected fallback font to cover 'A'")
	}
}

func TestFontBookNoFallbackMissingOnce(t *testing.T) {
	b, err := newFontBook(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if b.Has(FallbackFamily) {
		t.Fatal("Expected no fallback family")
	}

	b.Measure("\U0001F400\U0001F400", 30, parameter.DefaultFontFamily)
	b.Measure("\U0001F400", 40, parameter.DefaultFontFamily)
	if len(b.missing) != 1 {
		t.Errorf("Expected 1 missing rune recorded, got %d", len(b.missing))
	}

	runs := b.runs("A\U0001F400b", parameter.DefaultFontFamily)
	if len(runs) != 1 || runs[0].family != parameter.DefaultFontFamily {
		t.Errorf("Expected one run on the default family, got %+v", runs)
	}
}
