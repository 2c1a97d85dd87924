package render

import (
	"canvas-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keymap = []struct {
	raylib int32
	key    ui.Key
}{
	{rl.KeyUp, ui.KeyUp},
	{rl.KeyW, ui.KeyUp},
	{rl.KeyDown, ui.KeyDown},
	{rl.KeyS, ui.KeyDown},
	{rl.KeyLeft, ui.KeyLeft},
	{rl.KeyA, ui.KeyLeft},
	{rl.KeyRight, ui.KeyRight},
	{rl.KeyD, ui.KeyRight},
	{rl.KeySpace, ui.KeySpace},
	{rl.KeyEnter, ui.KeyEnter},
	{rl.KeyR, ui.KeyR},
	{rl.KeyTab, ui.KeyTab},
}

// Input turns raylib's polled state into host events once per frame.
type Input struct {
	host *ui.Host
	// touch enables touch events. Desktop raylib reports the mouse as touch
	// point 0, so it stays off there.
	touch bool

	mouseDown bool
	onScreen  bool
	lastMouse rl.Vector2
	touching  bool
	lastTouch rl.Vector2
}

func NewInput(host *ui.Host, touch bool) *Input {
	return &Input{host: host, touch: touch, onScreen: true}
}

func (in *Input) Poll() {
	if rl.IsWindowResized() {
		in.host.Dispatch(ui.Event{Kind: ui.Resize, Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()})
	}

	for _, k := range keymap {
		if rl.IsKeyPressed(k.raylib) {
			in.host.Dispatch(ui.Event{Kind: ui.KeyDown, Key: k.key})
		}
	}

	if in.touch {
		in.pollTouch()
		if in.touching {
			return
		}
	}
	in.pollMouse()
}

func (in *Input) pollMouse() {
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)

	onScreen := rl.IsCursorOnScreen()
	if in.onScreen && !onScreen {
		in.host.Dispatch(ui.Event{Kind: ui.PointerLeave, X: x, Y: y})
	}
	in.onScreen = onScreen

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		in.mouseDown = true
		in.host.Dispatch(ui.Event{Kind: ui.PointerDown, X: x, Y: y})
	}
	if pos != in.lastMouse {
		in.host.Dispatch(ui.Event{Kind: ui.PointerMove, X: x, Y: y})
		in.lastMouse = pos
	}
	if in.mouseDown && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		in.mouseDown = false
		in.host.Dispatch(ui.Event{Kind: ui.PointerUp, X: x, Y: y})
	}
}

// pollTouch follows the first touch point only.
func (in *Input) pollTouch() {
	count := rl.GetTouchPointCount()

	switch {
	case count > 0 && !in.touching:
		in.touching = true
		in.lastTouch = rl.GetTouchPosition(0)
		in.host.Dispatch(ui.Event{Kind: ui.TouchStart, X: float64(in.lastTouch.X), Y: float64(in.lastTouch.Y)})
	case count > 0:
		pos := rl.GetTouchPosition(0)
		if pos != in.lastTouch {
			in.lastTouch = pos
			in.host.Dispatch(ui.Event{Kind: ui.TouchMove, X: float64(pos.X), Y: float64(pos.Y)})
		}
	case in.touching:
		in.touching = false
		in.host.Dispatch(ui.Event{Kind: ui.TouchEnd, X: float64(in.lastTouch.X), Y: float64(in.lastTouch.Y)})
	}
}
