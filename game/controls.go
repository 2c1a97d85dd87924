package game

import (
	"math"

	"canvas-arcade/game/types"
)

// Key is a device independent game command.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyStart
	KeyReset
)

// HandleKey applies a key press and reports whether it changed anything.
// Steering needs a running game; Start also restarts an ended one.
func (g *Game) HandleKey(key Key) bool {
	switch key {
	case KeyUp:
		return g.Turn(types.Up)
	case KeyDown:
		return g.Turn(types.Down)
	case KeyLeft:
		return g.Turn(types.Left)
	case KeyRight:
		return g.Turn(types.Right)
	case KeyPause:
		return g.TogglePause()
	case KeyStart:
		if g.State == types.Ended {
			g.Reset()
		}
		return g.Start()
	case KeyReset:
		g.Reset()
		return true
	}
	return false
}

// Swipe steers from a touch gesture given by its start to end delta.
func (g *Game) Swipe(dx, dy float64) bool {
	dir, ok := SwipeDirection(dx, dy)
	if !ok {
		return false
	}
	return g.Turn(dir)
}

// SwipeDirection maps a touch delta to a direction. The dominant axis wins,
// ties count as vertical, and a tap with no vertical travel is no swipe.
func SwipeDirection(dx, dy float64) (types.Point, bool) {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return types.Right, true
		}
		return types.Left, true
	}
	switch {
	case dy > 0:
		return types.Down, true
	case dy < 0:
		return types.Up, true
	}
	return types.None, false
}
