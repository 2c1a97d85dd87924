package manager

import (
	"canvas-arcade/game/entity"
	"canvas-arcade/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	maxTrials    int
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		maxTrials:    types.MaxSpawnTrials,
	}
}

// GenerateFood picks a cell not occupied by the snake, uniformly at random.
// Rejection sampling is tried a bounded number of times; after that the free
// cells are enumerated and one is drawn directly, so a nearly full grid costs
// one scan instead of an unbounded retry loop. ok is false when the snake
// covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	if fm.grid.Cells() == 0 {
		return types.Point{}, false
	}

	for i := 0; i < fm.maxTrials; i++ {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{})
	if snake != nil {
		for _, part := range snake.Body {
			occupied[part] = struct{}{}
		}
	}

	free := make([]types.Point, 0, max(fm.grid.Cells()-len(occupied), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
