// Package grid holds the tile map the snake lives on.
//
// Cells are indexed [y][x]. A cell is types.TileEmpty, types.TileStrawberry or a
// positive snake segment whose value is its remaining lifetime in ticks.
package grid

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"strawberry-snake/game/types"
)

// RandomSource picks an int in [0, n). *rand.Rand from math/rand and x/exp/rand both fit.
type RandomSource interface {
	Intn(n int) int
}

type Grid struct {
	Width  int
	Height int
	cells  [][]int
}

// New allocates an all-empty grid.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(types.ErrInvalidSize, "%dx%d", width, height)
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

func (g *Grid) InBounds(p types.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g *Grid) Get(x, y int) (int, error) {
	if !g.InBounds(types.Point{X: x, Y: y}) {
		return 0, g.boundsError(x, y)
	}
	return g.cells[y][x], nil
}

func (g *Grid) Set(x, y, value int) error {
	if !g.InBounds(types.Point{X: x, Y: y}) {
		return g.boundsError(x, y)
	}
	g.cells[y][x] = value
	return nil
}

// At is Get for a Point.
func (g *Grid) At(p types.Point) (int, error) {
	return g.Get(p.X, p.Y)
}

func (g *Grid) boundsError(x, y int) error {
	return errors.Wrapf(types.ErrOutOfBounds, "(%d,%d) outside %dx%d grid", x, y, g.Width, g.Height)
}

// DecayAll ages every snake segment by one tick. Segments at 1 become empty.
func (g *Grid) DecayAll() {
	for _, row := range g.cells {
		for x, v := range row {
			if v > 0 {
				row[x] = v - 1
			}
		}
	}
}

// EmptyCells lists every empty tile in row-major order.
func (g *Grid) EmptyCells() []types.Point {
	var empty []types.Point
	for y, row := range g.cells {
		for x, v := range row {
			if v == types.TileEmpty {
				empty = append(empty, types.Point{X: x, Y: y})
			}
		}
	}
	return empty
}

// SpawnStrawberry places a strawberry on a uniformly chosen empty tile.
// It returns types.ErrGridFull and leaves the grid untouched when nothing is empty.
func (g *Grid) SpawnStrawberry(rng RandomSource) (types.Point, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return types.Point{}, types.ErrGridFull
	}
	p := empty[rng.Intn(len(empty))]
	g.cells[p.Y][p.X] = types.TileStrawberry
	return p, nil
}

// Count returns how many cells satisfy match.
func (g *Grid) Count(match func(value int) bool) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if match(v) {
				n++
			}
		}
	}
	return n
}

func (g *Grid) BodyCells() int {
	return g.Count(func(v int) bool { return v > 0 })
}

func (g *Grid) Strawberries() int {
	return g.Count(func(v int) bool { return v == types.TileStrawberry })
}

// Snapshot returns a deep copy of the cells, safe to hand to a renderer.
func (g *Grid) Snapshot() [][]int {
	out := make([][]int, len(g.cells))
	for y, row := range g.cells {
		out[y] = slices.Clone(row)
	}
	return out
}
