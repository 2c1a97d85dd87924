package ui

import (
	"image/color"

	"canvas-arcade/canvas"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: max(r.W-2*d, 0), H: max(r.H-2*d, 0)}
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Primitive is one entry of a display list.
type Primitive interface {
	primitive()
}

type FillRect struct {
	Rect  Rect
	Color color.NRGBA
}

type RoundRect struct {
	Rect   Rect
	Radius float64
	Color  color.NRGBA
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          color.NRGBA
}

type Circle struct {
	X, Y, R float64
	Color   color.NRGBA
}

// Text is anchored at its top left, or its top center for AlignCenter.
type Text struct {
	X, Y  float64
	Size  int
	Text  string
	Color color.NRGBA
	Align Align
}

// Raster shows a drawing surface stretched over Rect.
type Raster struct {
	Rect   Rect
	Canvas *canvas.Canvas
}

func (FillRect) primitive()  {}
func (RoundRect) primitive() {}
func (Line) primitive()      {}
func (Circle) primitive()    {}
func (Text) primitive()      {}
func (Raster) primitive()    {}

// Scene is an ordered display list, painted back to front.
type Scene struct {
	Items []Primitive
}

func (s *Scene) Add(items ...Primitive) {
	s.Items = append(s.Items, items...)
}

// Button is a clickable labelled rectangle.
type Button struct {
	Rect   Rect
	Label  string
	Active bool
	Action func()
}

func (b Button) draw(s *Scene, fill, activeFill, textColor color.NRGBA) {
	bg := fill
	if b.Active {
		bg = activeFill
	}
	s.Add(
		RoundRect{Rect: b.Rect, Radius: b.Rect.H / 2, Color: bg},
		Text{X: b.Rect.X + b.Rect.W/2, Y: b.Rect.Y + (b.Rect.H-labelSize)/2, Size: labelSize, Text: b.Label, Color: textColor, Align: AlignCenter},
	)
}

// hit runs the action of the first button containing (x, y).
func hit(buttons []Button, x, y float64) bool {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) && b.Action != nil {
			b.Action()
			return true
		}
	}
	return false
}

const labelSize = 18

func rgb(hex uint32) color.NRGBA {
	return color.NRGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

func rgba(hex uint32, a uint8) color.NRGBA {
	c := rgb(hex)
	c.A = a
	return c
}
