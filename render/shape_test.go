package render

import (
	"testing"

	"github.com/lixenwraith/fountain/vmath"
)

func TestRectangleDraw(t *testing.T) {
	s := &recordingSurface{w: 800, h: 600}
	r := NewRectangle(DefaultRectangleStyle())
	r.Draw(s, vmath.Vec2{X: 10, Y: 20})

	want := []string{
		"fillRect 10,20 30x30 rgba(200,220,255,0.90)",
		"strokeRect 10,20 30x30 lw=5 rgba(80,80,155,0.90)",
	}
	assertCalls(t, s.calls, want)

	if r.Kind() != ShapeRectangle {
		t.Errorf("Expected kind rectangle, got %v", r.Kind())
	}
}

func TestCircleDrawCentered(t *testing.T) {
	s := &recordingSurface{w: 800, h: 600}
	c := NewCircle(DefaultCircleStyle())
	c.Draw(s, vmath.Vec2{X: 100, Y: 50})

	want := []string{
		"fillCircle 100,50 r=20 rgba(250,220,255,0.90)",
		"strokeCircle 100,50 r=20 lw=5 rgba(155,80,155,0.90)",
	}
	assertCalls(t, s.calls, want)
}

func TestGlyphBufferBuiltOnce(t *testing.T) {
	ts := &countingTypesetter{}
	s := &recordingSurface{w: 800, h: 600}

	g := NewGlyph(ts, GlyphStyle{Text: "A", Size: 24, Fill: Opaque(255, 0, 0)})
	if ts.measures != 1 || ts.paints != 1 {
		t.Fatalf("Expected one measure and one paint at construction, got %d/%d", ts.measures, ts.paints)
	}

	for i := 0; i < 50; i++ {
		g.Draw(s, vmath.Vec2{X: float64(i), Y: 0})
	}

	if ts.measures != 1 || ts.paints != 1 {
		t.Errorf("Expected no re-measure or re-paint on draw, got %d/%d", ts.measures, ts.paints)
	}
	if len(s.buffers) != 50 {
		t.Fatalf("Expected 50 blits, got %d", len(s.buffers))
	}
	for i, buf := range s.buffers {
		if buf != g.Buffer() {
			t.Fatalf("Blit %d used a different buffer", i)
		}
	}
}

func TestGlyphBufferGeometry(t *testing.T) {
	ts := &countingTypesetter{}
	g := NewGlyph(ts, GlyphStyle{Text: "AB", Size: 24, Fill: Opaque(1, 2, 3)})

	ext := g.Buffer().Bounds()
	if ext.Width != 24 || ext.Height != 24 {
		t.Errorf("Expected 24x24 buffer, got %dx%d", ext.Width, ext.Height)
	}
	if ts.middleY != 12 {
		t.Errorf("Expected text middle at 12, got %d", ts.middleY)
	}
	if g.Buffer().Text != "AB" || g.Buffer().Fill != Opaque(1, 2, 3) {
		t.Errorf("Expected buffer to retain text and fill, got %q %v", g.Buffer().Text, g.Buffer().Fill)
	}
}

func TestEmptyTextBufferNotZeroSized(t *testing.T) {
	ts := &countingTypesetter{}
	buf := RenderTextBuffer(ts, "", 0, "", Black)
	ext := buf.Bounds()
	if ext.Width < 1 || ext.Height < 1 {
		t.Errorf("Expected at least 1x1 buffer, got %dx%d", ext.Width, ext.Height)
	}
}

func TestShapeKindString(t *testing.T) {
	tests := map[ShapeKind]string{
		ShapeRectangle: "rectangle",
		ShapeCircle:    "circle",
		ShapeGlyph:     "glyph",
		ShapeKind(99):  "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d calls, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Call %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
