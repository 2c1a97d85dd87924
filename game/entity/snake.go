package entity

import (
	"canvas-arcade/game/types"
)

// Snake is an ordered list of cells, head first.
type Snake struct {
	Body []types.Point
	// Direction is applied on the next move.
	Direction types.Point
	// heading is the direction of the last committed move and defines the
	// axis a turn may not reverse.
	heading types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.None,
		heading:   types.None,
	}
}

// Launch sets both the pending direction and the axis of motion, used when a
// game starts moving.
func (s *Snake) Launch(dir types.Point) {
	s.Direction = dir
	s.heading = dir
}

// Heading returns the direction of the last committed move.
func (s *Snake) Heading() types.Point {
	return s.heading
}

// Move prepends newHead to the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.heading = s.Direction
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head enters on the next move.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction)
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection requests a turn. Only unit cardinal vectors are accepted, and a
// turn onto the current axis of motion is rejected: reversing would run the
// head into the neck. The check uses the heading, not the pending direction,
// so two quick turns between moves cannot add up to a reversal.
func (s *Snake) SetDirection(dir types.Point) bool {
	if !isCardinal(dir) {
		return false
	}
	if dir.X != 0 && s.heading.X != 0 {
		return false
	}
	if dir.Y != 0 && s.heading.Y != 0 {
		return false
	}
	s.Direction = dir
	return true
}

func isCardinal(p types.Point) bool {
	switch p {
	case types.Up, types.Down, types.Left, types.Right:
		return true
	}
	return false
}
