package types

// Point is a cell on the grid, also used as a direction vector.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Cardinal directions. Y grows downwards, like screen coordinates.
var (
	None  = Point{X: 0, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// State is the lifecycle of a single game.
type State int

const (
	Idle State = iota
	Running
	Paused
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Game constants
const (
	GridSize       = 20
	FoodPoints     = 10
	SpeedUpEvery   = 50 // score multiple that shortens the tick interval
	MaxSpawnTrials = 64 // random draws before falling back to a free-cell scan
)

// Initial layout of a fresh game.
var (
	StartCell = Point{X: 10, Y: 10}
	StartFood = Point{X: 15, Y: 15}
)
