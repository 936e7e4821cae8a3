// Package tiles turns the numeric board into the sprites the renderer draws.
package tiles

import (
	"github.com/pkg/errors"

	"strawberry-snake/game/types"
)

type Sprite int

const (
	Ground Sprite = iota
	Strawberry
	Worm
	WormHead
	NumSprites
)

var spriteNames = [NumSprites]string{
	Ground:     "ground",
	Strawberry: "strawberry",
	Worm:       "worm",
	WormHead:   "worm-head",
}

// String is also the texture file stem.
func (s Sprite) String() string {
	if s < 0 || s >= NumSprites {
		return "unknown"
	}
	return spriteNames[s]
}

// Classify maps a tile value to its sprite. Any value outside the board encoding
// means the board is corrupt and is reported as types.ErrInvalidTile.
func Classify(value, length int) (Sprite, error) {
	switch {
	case value == types.TileEmpty:
		return Ground, nil
	case value == types.TileStrawberry:
		return Strawberry, nil
	case value > 0 && value < length:
		return Worm, nil
	case value > 0 && value == length:
		return WormHead, nil
	default:
		return Ground, errors.Wrapf(types.ErrInvalidTile, "tile %d with snake length %d", value, length)
	}
}

// Range is the inclusive span of tile values a sprite stands for at the given length.
// ok is false when no value maps to the sprite, e.g. Worm for a length-1 snake.
func Range(s Sprite, length int) (lo, hi int, ok bool) {
	switch s {
	case Ground:
		return types.TileEmpty, types.TileEmpty, true
	case Strawberry:
		return types.TileStrawberry, types.TileStrawberry, true
	case Worm:
		return 1, length - 1, length > 1
	case WormHead:
		return length, length, length > 0
	default:
		return 0, 0, false
	}
}

// Frame is the read-only view handed to a renderer each tick.
type Frame struct {
	Cells    [][]Sprite // [y][x]
	Length   int
	TileSize int
}

// NewFrame classifies every cell of a board snapshot.
func NewFrame(board [][]int, length, tileSize int) (Frame, error) {
	cells := make([][]Sprite, len(board))
	for y, row := range board {
		cells[y] = make([]Sprite, len(row))
		for x, v := range row {
			s, err := Classify(v, length)
			if err != nil {
				return Frame{}, errors.Wrapf(err, "cell (%d,%d)", x, y)
			}
			cells[y][x] = s
		}
	}
	return Frame{Cells: cells, Length: length, TileSize: tileSize}, nil
}

// Position is the pixel position of the top-left corner of tile (x, y).
func (f Frame) Position(x, y int) (int, int) {
	return x * f.TileSize, y * f.TileSize
}
