package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/fountain/parameter"
	"github.com/lixenwraith/fountain/render"
)

// Surface maps the pixel drawing model onto terminal cells
// One cell covers CellWidth x CellHeight pixels; fills paint cell backgrounds
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized tcell screen
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Size returns the screen size in pixels
func (s *Surface) Size() (width, height int) {
	cols, rows := s.screen.Size()
	return cols * parameter.CellWidth, rows * parameter.CellHeight
}

func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcell.ColorBlack))
}

// FillRect paints every cell the rectangle overlaps
func (s *Surface) FillRect(x, y, w, h float64, c render.Color) {
	c0, r0, c1, r1 := s.cellSpan(x, y, x+w, y+h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.paint(col, row, c)
		}
	}
}

// StrokeRect paints the cells overlapping the band of lineWidth centered on the outline
func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c render.Color) {
	half := lineWidth / 2
	c0, r0, c1, r1 := s.cellSpan(x-half, y-half, x+w+half, y+h+half)

	// Inner hole, cells fully inside it are untouched
	ix0, iy0 := x+half, y+half
	ix1, iy1 := x+w-half, y+h-half

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px0, py0, px1, py1 := cellRect(col, row)
			if px0 >= ix0 && px1 <= ix1 && py0 >= iy0 && py1 <= iy1 {
				continue
			}
			s.paint(col, row, c)
		}
	}
}

// FillCircle paints cells whose centers fall inside the radius
// A circle smaller than a cell still marks the cell holding its center
func (s *Surface) FillCircle(cx, cy, r float64, c render.Color) {
	c0, r0, c1, r1 := s.cellSpan(cx-r, cy-r, cx+r, cy+r)
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			mx, my := cellCenter(col, row)
			if math.Hypot(mx-cx, my-cy) <= r {
				s.paint(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		col, row := pixelToCell(cx, cy)
		if s.inside(col, row) {
			s.paint(col, row, c)
		}
	}
}

// StrokeCircle paints cells that intersect the ring of lineWidth around the outline
func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, c render.Color) {
	half := lineWidth / 2
	outer := r + half
	inner := max(r-half, 0)

	c0, r0, c1, r1 := s.cellSpan(cx-outer, cy-outer, cx+outer, cy+outer)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			near, far := cellDistances(col, row, cx, cy)
			if near <= outer && far >= inner {
				s.paint(col, row, c)
			}
		}
	}
}

// DrawBuffer writes the buffer's text as native runes in its fill color
// Wide runes advance two columns; text past the right edge is clipped
func (s *Surface) DrawBuffer(buf *render.TextBuffer, x, y float64) {
	if buf == nil || buf.Text == "" {
		return
	}

	ext := buf.Bounds()
	col, row := pixelToCell(x, y+float64(ext.Height)/2)
	cols, rows := s.screen.Size()
	if row < 0 || row >= rows {
		return
	}

	fg := toTcell(render.Opaque(buf.Fill.R, buf.Fill.G, buf.Fill.B))
	for _, ch := range buf.Text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > cols {
			return
		}
		if col >= 0 {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, ch, nil, style.Foreground(fg))
		}
		col += w
	}
}

// paint blends c over the cell's current background, keeping its rune
func (s *Surface) paint(col, row int, c render.Color) {
	mainc, combc, style, _ := s.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()

	blended := c.Over(fromTcell(bg))
	s.screen.SetContent(col, row, mainc, combc, style.Background(toTcell(blended)))
}

// cellSpan converts a pixel box to the inclusive cell range it overlaps, clipped to the screen
func (s *Surface) cellSpan(x0, y0, x1, y1 float64) (c0, r0, c1, r1 int) {
	cols, rows := s.screen.Size()
	c0 = max(int(math.Floor(x0/parameter.CellWidth)), 0)
	r0 = max(int(math.Floor(y0/parameter.CellHeight)), 0)
	c1 = min(int(math.Ceil(x1/parameter.CellWidth))-1, cols-1)
	r1 = min(int(math.Ceil(y1/parameter.CellHeight))-1, rows-1)
	return c0, r0, c1, r1
}

func (s *Surface) inside(col, row int) bool {
	cols, rows := s.screen.Size()
	return col >= 0 && row >= 0 && col < cols && row < rows
}

func pixelToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / parameter.CellWidth)), int(math.Floor(y / parameter.CellHeight))
}

func cellRect(col, row int) (x0, y0, x1, y1 float64) {
	x0 = float64(col * parameter.CellWidth)
	y0 = float64(row * parameter.CellHeight)
	return x0, y0, x0 + parameter.CellWidth, y0 + parameter.CellHeight
}

func cellCenter(col, row int) (x, y float64) {
	x0, y0, x1, y1 := cellRect(col, row)
	return (x0 + x1) / 2, (y0 + y1) / 2
}

// cellDistances returns the nearest and farthest distance from (cx, cy) to any point of the cell
func cellDistances(col, row int, cx, cy float64) (near, far float64) {
	x0, y0, x1, y1 := cellRect(col, row)
	nx := max(x0-cx, 0, cx-x1)
	ny := max(y0-cy, 0, cy-y1)
	fx := max(math.Abs(cx-x0), math.Abs(cx-x1))
	fy := max(math.Abs(cy-y0), math.Abs(cy-y1))
	return math.Hypot(nx, ny), math.Hypot(fx, fy)
}

func toTcell(c render.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// fromTcell reads a cell background; the terminal default counts as black
func fromTcell(c tcell.Color) render.Color {
	if c == tcell.ColorDefault || !c.Valid() {
		return render.Black
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return render.Black
	}
	return render.Opaque(uint8(r), uint8(g), uint8(b))
}
