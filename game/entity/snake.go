package entity

import (
	"strawberry-snake/game/types"
)

// Snake tracks only the head. The body lives in the grid as decaying lifetimes.
type Snake struct {
	Head      types.Point
	Length    int
	Direction types.Direction
}

// NewSnake returns a snake whose head is at head and that heads in dir.
func NewSnake(head types.Point, length int, dir types.Direction) *Snake {
	return &Snake{
		Head:      head,
		Length:    length,
		Direction: dir,
	}
}

// SetDirection adopts dir unless it would reverse the snake onto itself.
// It reports whether the heading changed.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() || dir == s.Direction {
		return false
	}
	s.Direction = dir
	return true
}

// NextHead is the tile the head moves into on the next tick.
func (s *Snake) NextHead() types.Point {
	return s.Head.Add(s.Direction.ToPoint())
}

func (s *Snake) Move(newHead types.Point) {
	s.Head = newHead
}

// Grow lengthens the snake by one segment and returns the new length.
func (s *Snake) Grow() int {
	s.Length++
	return s.Length
}
