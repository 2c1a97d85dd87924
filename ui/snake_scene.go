package ui

import (
	"image/color"
	"math"
	"time"

	"canvas-arcade/game"
	"canvas-arcade/game/types"
)

var (
	boardBackground = rgb(0xf0f0f0)
	gridLineColor   = rgb(0xe0e0e0)
	headColor       = rgb(0x4caf50)
	eyeColor        = rgb(0x000000)
	foodColor       = rgb(0xff5252)
	shineColor      = rgb(0xff8a80)
)

const (
	gridLineWidth = 0.5
	segmentRadius = 5
)

// boardRect is the largest square centered in area.
func boardRect(area Rect) Rect {
	size := math.Max(math.Min(area.W, area.H), 0)
	return Rect{
		X: area.X + (area.W-size)/2,
		Y: area.Y + (area.H-size)/2,
		W: size,
		H: size,
	}
}

// bodyColor shades segment i of the body. The green channel saturates, as
// the web page this game comes from did.
func bodyColor(i int) color.NRGBA {
	g := min(175+150-(i%5)*10, 0xff)
	return color.NRGBA{R: 76, G: uint8(g), B: 80, A: 0xff}
}

// drawBoard adds the grid, the snake and the food of snap to s. now drives
// the food pulse.
func drawBoard(s *Scene, snap game.Snapshot, board Rect, now time.Time) {
	if board.W <= 0 || snap.Grid.Width <= 0 || snap.Grid.Height <= 0 {
		return
	}
	cell := math.Min(board.W/float64(snap.Grid.Width), board.H/float64(snap.Grid.Height))

	s.Add(FillRect{Rect: board, Color: boardBackground})

	for i := 0; i <= snap.Grid.Width; i++ {
		x := board.X + float64(i)*cell
		s.Add(Line{X1: x, Y1: board.Y, X2: x, Y2: board.Y + board.H, Width: gridLineWidth, Color: gridLineColor})
	}
	for i := 0; i <= snap.Grid.Height; i++ {
		y := board.Y + float64(i)*cell
		s.Add(Line{X1: board.X, Y1: y, X2: board.X + board.W, Y2: y, Width: gridLineWidth, Color: gridLineColor})
	}

	for i, part := range snap.Body {
		x := board.X + float64(part.X)*cell
		y := board.Y + float64(part.Y)*cell

		fill := headColor
		if i > 0 {
			fill = bodyColor(i)
		}
		s.Add(RoundRect{Rect: Rect{X: x + 1, Y: y + 1, W: cell - 2, H: cell - 2}, Radius: segmentRadius, Color: fill})

		if i == 0 {
			drawEyes(s, x, y, cell, snap.Direction)
		}
	}

	if snap.HasFood {
		fx := board.X + float64(snap.Food.X)*cell
		fy := board.Y + float64(snap.Food.Y)*cell
		pulse := math.Sin(float64(now.UnixMilli())/200) * 2

		s.Add(
			Circle{X: fx + cell/2, Y: fy + cell/2, R: math.Max(cell/2-2+pulse, 0), Color: foodColor},
			Circle{X: fx + cell/3, Y: fy + cell/3, R: cell / 6, Color: shineColor},
		)
	}
}

// drawEyes places two eyes on the head cell at (x, y), looking along dir.
// A snake that has not moved yet looks up.
func drawEyes(s *Scene, x, y, cell float64, dir types.Point) {
	eye := cell / 5

	var lx, ly, rx, ry float64
	switch dir {
	case types.Right:
		lx, ly = x+cell-eye*2, y+eye*2
		rx, ry = x+cell-eye*2, y+cell-eye*3
	case types.Left:
		lx, ly = x+eye, y+eye*2
		rx, ry = x+eye, y+cell-eye*3
	case types.Down:
		lx, ly = x+eye*2, y+cell-eye*2
		rx, ry = x+cell-eye*3, y+cell-eye*2
	default:
		lx, ly = x+eye*2, y+eye
		rx, ry = x+cell-eye*3, y+eye
	}

	s.Add(
		Circle{X: lx, Y: ly, R: eye, Color: eyeColor},
		Circle{X: rx, Y: ry, R: eye, Color: eyeColor},
	)
}
