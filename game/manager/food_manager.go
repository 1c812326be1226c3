package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// SpawnPolicy selects how a new target position is chosen.
type SpawnPolicy int

const (
	// SpawnAnywhere draws uniformly from the whole grid, including cells under
	// the snake.
	SpawnAnywhere SpawnPolicy = iota
	// SpawnFree rejects cells occupied by the snake.
	SpawnFree
)

// maxSpawnTries bounds rejection sampling before falling back to a scan.
const maxSpawnTries = 64

type FoodManager struct {
	grid         types.Grid
	policy       SpawnPolicy
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, policy SpawnPolicy, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		policy:       policy,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood returns a new target position. Under SpawnFree a full snake
// leaves no free cell, in which case an occupied cell is returned.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	if fm.policy == SpawnAnywhere || snake == nil {
		return fm.randomPoint()
	}

	for i := 0; i < maxSpawnTries; i++ {
		food := fm.randomPoint()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-snake.Len())
	for y := 0; y < fm.grid.TileCount; y++ {
		for x := 0; x < fm.grid.TileCount; x++ {
			p := types.Point{X: x, Y: y}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return fm.randomPoint()
	}
	return free[fm.rng.Intn(len(free))]
}

func (fm *FoodManager) randomPoint() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.TileCount),
		Y: fm.rng.Intn(fm.grid.TileCount),
	}
}

func (fm *FoodManager) Policy() SpawnPolicy {
	return fm.policy
}
