package manager

import (
	"strawberry-snake/game/grid"
	"strawberry-snake/game/types"
)

// CollisionType is what the head runs into on its next move.
type CollisionType int

const (
	NoCollision CollisionType = iota
	StrawberryCollision
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case StrawberryCollision:
		return "strawberry"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

// Fatal reports whether the collision ends the game.
func (c CollisionType) Fatal() bool {
	return c == WallCollision || c == SelfCollision
}

type CollisionManager struct {
	grid *grid.Grid
}

func NewCollisionManager(g *grid.Grid) *CollisionManager {
	return &CollisionManager{grid: g}
}

// CheckCollision classifies the tile at pos without touching the grid.
func (cm *CollisionManager) CheckCollision(pos types.Point) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	v, _ := cm.grid.At(pos)
	switch {
	case v == types.TileEmpty:
		return NoCollision
	case v == types.TileStrawberry:
		return StrawberryCollision
	default:
		return SelfCollision
	}
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}
