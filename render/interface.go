package render

// Surface is the 2D drawing target shared by all shapes during a frame
// Coordinates are surface pixels, origin top-left, y down
type Surface interface {
	// Size returns the drawable area in surface pixels
	Size() (width, height int)
	// Clear erases the entire surface to the background
	Clear()
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h, lineWidth float64, c Color)
	// FillCircle and StrokeCircle take the center, not the top-left corner
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r, lineWidth float64, c Color)
	// DrawBuffer blits a pre-rendered text buffer with its top-left at (x, y)
	DrawBuffer(buf *TextBuffer, x, y float64)
}

// Resizer is implemented by surfaces that can be resized to full-screen dimensions
type Resizer interface {
	Resize(width, height int)
}
