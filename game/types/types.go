package types

import "github.com/pkg/errors"

// Tile encoding. Positive values are snake segments holding their remaining lifetime.
const (
	TileEmpty      = 0
	TileStrawberry = -1
)

var (
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	ErrGridFull    = errors.New("grid has no empty tile")
	ErrInvalidTile = errors.New("invalid tile value")
	ErrInvalidSize = errors.New("invalid grid size")
)

// Point is a grid coordinate, X is the column and Y the row.
type Point struct {
	X, Y int
}

// Add returns p moved by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is a heading. The order matters: opposite headings are two steps apart.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

var directionVectors = [...]Point{
	Up:    {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Down:  {X: 0, Y: 1},
	Right: {X: 1, Y: 0},
}

var directionNames = [...]string{
	Up:    "Up",
	Left:  "Left",
	Down:  "Down",
	Right: "Right",
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// ToPoint returns the unit vector for d.
func (d Direction) ToPoint() Point {
	if !d.Valid() {
		return Point{}
	}
	return directionVectors[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return directionNames[d]
}
