package ui

// EventKind names a window level event, like a DOM event type.
type EventKind int

const (
	KeyDown EventKind = iota
	PointerDown
	PointerMove
	PointerUp
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
	Resize
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case PointerLeave:
		return "pointerleave"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Key is a physical key after backend translation. WASD arrive as arrows.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyR
	KeyTab
)

// Event carries window coordinates for pointer and touch events and the new
// window size for Resize.
type Event struct {
	Kind   EventKind
	Key    Key
	X, Y   float64
	Width  int
	Height int
}
