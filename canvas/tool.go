package canvas

import (
	"image/color"
)

type Tool int

const (
	Brush Tool = iota
	Eraser
)

func (t Tool) String() string {
	switch t {
	case Brush:
		return "brush"
	case Eraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// Brush width bounds, in pixels.
const (
	MinWidth     = 1
	MaxWidth     = 50
	DefaultWidth = 5
)

// Palette is the fixed set of swatches offered by the toolbar.
var Palette = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // black
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // red
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, // green
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // blue
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // yellow
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff}, // magenta
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff}, // cyan
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
}

// ToolState is what the next stroke is drawn with.
type ToolState struct {
	Tool  Tool
	Color color.RGBA
	Width int
}

func DefaultToolState() ToolState {
	return ToolState{
		Tool:  Brush,
		Color: Palette[0],
		Width: DefaultWidth,
	}
}

func ClampWidth(w int) int {
	return min(max(w, MinWidth), MaxWidth)
}
