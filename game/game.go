package game

import (
	"context"
	"log/slog"
	"time"

	"canvas-arcade/game/entity"
	"canvas-arcade/game/manager"
	"canvas-arcade/game/types"
	"canvas-arcade/storage"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Options configures a Game. Zero fields take the defaults of DefaultOptions.
type Options struct {
	Grid   types.Grid
	Tuning manager.Tuning
	// Seed drives food placement. Zero seeds from the clock.
	Seed uint64
}

func DefaultOptions() Options {
	return Options{
		Grid: types.Grid{Width: types.GridSize, Height: types.GridSize},
		Tuning: manager.Tuning{
			FoodPoints:   types.FoodPoints,
			BaseInterval: 150 * time.Millisecond,
			MinInterval:  50 * time.Millisecond,
			SpeedStep:    10 * time.Millisecond,
			SpeedUpEvery: types.SpeedUpEvery,
			HighScoreKey: "snakeHighScore",
		},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Grid.Width <= 0 || o.Grid.Height <= 0 {
		o.Grid = def.Grid
	}
	if o.Tuning.FoodPoints <= 0 {
		o.Tuning.FoodPoints = def.Tuning.FoodPoints
	}
	if o.Tuning.BaseInterval <= 0 {
		o.Tuning.BaseInterval = def.Tuning.BaseInterval
	}
	if o.Tuning.MinInterval <= 0 {
		o.Tuning.MinInterval = def.Tuning.MinInterval
	}
	if o.Tuning.SpeedStep < 0 {
		o.Tuning.SpeedStep = def.Tuning.SpeedStep
	}
	if o.Tuning.SpeedUpEvery <= 0 {
		o.Tuning.SpeedUpEvery = def.Tuning.SpeedUpEvery
	}
	if o.Tuning.HighScoreKey == "" {
		o.Tuning.HighScoreKey = def.Tuning.HighScoreKey
	}
	return o
}

type Game struct {
	ID      string
	Grid    types.Grid
	State   types.State
	Snake   *entity.Snake
	Food    types.Point
	HasFood bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	logger       *slog.Logger

	lastStep time.Time
}

// NewGame builds an idle game. The high score is read from store; store may
// be nil, in which case nothing is persisted.
func NewGame(ctx context.Context, opts Options, store storage.Store, logger *slog.Logger) *Game {
	opts = opts.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	id := uuid.New().String()
	logger = logger.With(slog.String("component", "snake"), slog.String("game_id", id))

	collisionMgr := manager.NewCollisionManager(opts.Grid)
	g := &Game{
		ID:           id,
		Grid:         opts.Grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(opts.Grid, collisionMgr, rand.New(rand.NewSource(seed))),
		stateMgr:     manager.NewStateManager(ctx, store, opts.Tuning, logger),
		logger:       logger,
	}
	g.Reset()

	return g
}

// Reset returns to idle with a one-cell snake at the start cell. The high
// score is kept.
func (g *Game) Reset() {
	g.State = types.Idle
	g.Snake = entity.NewSnake(startCell(g.Grid))
	g.Food = startFood(g.Grid)
	g.HasFood = g.Food != g.Snake.GetHead()
	g.stateMgr.Reset()
	g.lastStep = time.Time{}
}

func startCell(grid types.Grid) types.Point {
	if grid.Width == types.GridSize && grid.Height == types.GridSize {
		return types.StartCell
	}
	return types.Point{X: grid.Width / 2, Y: grid.Height / 2}
}

func startFood(grid types.Grid) types.Point {
	if grid.Width == types.GridSize && grid.Height == types.GridSize {
		return types.StartFood
	}
	return types.Point{X: grid.Width * 3 / 4, Y: grid.Height * 3 / 4}
}

// Start moves an idle game to running, heading right.
func (g *Game) Start() bool {
	if g.State != types.Idle {
		return false
	}
	g.Snake.Launch(types.Right)
	g.State = types.Running
	g.lastStep = time.Time{}
	g.logger.Info("game started")
	return true
}

// TogglePause flips between running and paused; other states ignore it.
func (g *Game) TogglePause() bool {
	switch g.State {
	case types.Running:
		g.State = types.Paused
	case types.Paused:
		g.State = types.Running
	default:
		return false
	}
	return true
}

// Turn requests a direction change for the next move. Only a running game
// steers.
func (g *Game) Turn(dir types.Point) bool {
	if g.State != types.Running {
		return false
	}
	return g.Snake.SetDirection(dir)
}

// Step is the per-frame entry point. It advances the game when at least the
// current interval has passed since the last move and reports whether it did.
// The first frame after a start only records the time.
func (g *Game) Step(ctx context.Context, now time.Time) bool {
	if g.State != types.Running {
		return false
	}
	if g.lastStep.IsZero() {
		g.lastStep = now
		return false
	}
	if now.Sub(g.lastStep) < g.stateMgr.Interval() {
		return false
	}
	g.lastStep = now
	g.Advance(ctx)
	return true
}

// Advance commits one move regardless of timing.
func (g *Game) Advance(ctx context.Context) {
	if g.State != types.Running {
		return
	}

	next := g.Snake.NextHead()
	if collision := g.collisionMgr.CheckCollision(next, g.Snake); collision != manager.NoCollision {
		g.State = types.Ended
		newRecord := g.stateMgr.UpdateHighScore(ctx)
		g.logger.Info("game over",
			slog.String("collision", collision.String()),
			slog.Int("score", g.stateMgr.Score()),
			slog.Int("length", g.Snake.Len()),
			slog.Bool("high_score", newRecord),
		)
		return
	}

	g.Snake.Move(next)

	if g.HasFood && g.collisionMgr.IsFoodCollision(next, g.Food) {
		g.stateMgr.AddFood(ctx)
		g.Food, g.HasFood = g.foodMgr.GenerateFood(g.Snake)
		if !g.HasFood {
			g.logger.Info("board full", slog.Int("score", g.stateMgr.Score()))
		}
		return
	}

	g.Snake.RemoveTail()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) Interval() time.Duration {
	return g.stateMgr.Interval()
}

// Snapshot is a read-only copy of what a renderer needs.
type Snapshot struct {
	Grid      types.Grid
	State     types.State
	Body      []types.Point
	Direction types.Point
	Food      types.Point
	HasFood   bool
	Score     int
	HighScore int
}

func (g *Game) Snapshot() Snapshot {
	body := make([]types.Point, len(g.Snake.Body))
	copy(body, g.Snake.Body)

	return Snapshot{
		Grid:      g.Grid,
		State:     g.State,
		Body:      body,
		Direction: g.Snake.Direction,
		Food:      g.Food,
		HasFood:   g.HasFood,
		Score:     g.stateMgr.Score(),
		HighScore: g.stateMgr.GetHighScore(),
	}
}
