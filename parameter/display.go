package parameter

// DefaultFontFamily is the built-in family registered by render.NewFontBook
const DefaultFontFamily = "go"

// Terminal cell geometry in surface pixels
const (
	CellWidth  = 8
	CellHeight = 16
)

// DefaultWidth/DefaultHeight size the window when not full-screen
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// FrameRate is the terminal host tick rate
const FrameRate = 60
