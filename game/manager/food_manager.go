package manager

import (
	"github.com/pkg/errors"

	"strawberry-snake/game/grid"
	"strawberry-snake/game/types"
)

// FoodManager keeps a strawberry on the grid.
type FoodManager struct {
	grid       *grid.Grid
	rng        grid.RandomSource
	strawberry types.Point
	present    bool
}

func NewFoodManager(g *grid.Grid, rng grid.RandomSource) *FoodManager {
	return &FoodManager{
		grid: g,
		rng:  rng,
	}
}

// Spawn places a new strawberry. On a full grid it returns types.ErrGridFull and
// the manager reports no strawberry until the next successful spawn.
func (fm *FoodManager) Spawn() (types.Point, error) {
	p, err := fm.grid.SpawnStrawberry(fm.rng)
	if err != nil {
		fm.present = false
		return types.Point{}, errors.Wrap(err, "spawn strawberry")
	}
	fm.strawberry = p
	fm.present = true
	return p, nil
}

// Eaten forgets the current strawberry. The grid cell is overwritten by the caller.
func (fm *FoodManager) Eaten() {
	fm.present = false
}

// Strawberry returns the current strawberry and whether one is on the grid.
func (fm *FoodManager) Strawberry() (types.Point, bool) {
	return fm.strawberry, fm.present
}
