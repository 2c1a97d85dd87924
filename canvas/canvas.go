package canvas

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	ErrNoSurface         = errors.New("canvas has no surface")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// Background is the blank surface color.
var Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Canvas is a raster drawing surface fed by pointer strokes. A zero sized
// canvas has no surface and ignores every drawing operation.
type Canvas struct {
	img     *image.RGBA
	tool    ToolState
	drawing bool
	last    Point
	// version changes on every pixel mutation so displays can skip uploads.
	version uint64
}

func New(width, height int) *Canvas {
	c := &Canvas{tool: DefaultToolState()}
	c.Resize(width, height)
	return c
}

// Resize replaces the surface with a blank one of the new size. Drawn
// content is not carried over.
func (c *Canvas) Resize(width, height int) {
	c.drawing = false
	c.version++
	if width <= 0 || height <= 0 {
		c.img = nil
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.fill()
}

func (c *Canvas) fill() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
}

// Image returns the live surface, or nil when there is none.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Version() uint64 {
	return c.version
}

func (c *Canvas) ToolState() ToolState {
	return c.tool
}

func (c *Canvas) SetTool(t Tool) {
	c.tool.Tool = t
}

// SetColor picks a paint color and switches back to the brush.
func (c *Canvas) SetColor(col color.RGBA) {
	c.tool.Color = col
	c.tool.Tool = Brush
}

func (c *Canvas) SetWidth(w int) {
	c.tool.Width = ClampWidth(w)
}

func (c *Canvas) Drawing() bool {
	return c.drawing
}

// BeginStroke opens a path at p with the current tool state. Nothing is
// painted until the path is extended.
func (c *Canvas) BeginStroke(p Point) {
	if c.img == nil {
		return
	}
	c.drawing = true
	c.last = p
}

// ContinueStroke paints a round capped segment from the previous point to p.
func (c *Canvas) ContinueStroke(p Point) {
	if c.img == nil || !c.drawing {
		return
	}
	strokeSegment(c.img, c.last, p, c.tool)
	c.last = p
	c.version++
}

func (c *Canvas) EndStroke() {
	c.drawing = false
}

// Clear repaints the whole surface with the background.
func (c *Canvas) Clear() {
	if c.img == nil {
		return
	}
	c.fill()
	c.version++
}

// Pixels copies the surface into dst as straight alpha colors, row by row,
// growing dst when it is too short. Display backends upload this buffer.
func (c *Canvas) Pixels(dst []color.RGBA) []color.RGBA {
	if c.img == nil {
		return dst[:0]
	}
	w, h := c.Size()
	if cap(dst) < w*h {
		dst = make([]color.RGBA, w*h)
	}
	dst = dst[:w*h]

	for y := 0; y < h; y++ {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+w*4]
		for x := 0; x < w; x++ {
			dst[y*w+x] = unpremultiply(row[x*4], row[x*4+1], row[x*4+2], row[x*4+3])
		}
	}
	return dst
}

func unpremultiply(r, g, b, a uint8) color.RGBA {
	switch a {
	case 0:
		return color.RGBA{}
	case 0xff:
		return color.RGBA{R: r, G: g, B: b, A: a}
	}
	un := func(v uint8) uint8 {
		return uint8(min(int(v)*0xff/int(a), 0xff))
	}
	return color.RGBA{R: un(r), G: un(g), B: un(b), A: a}
}
