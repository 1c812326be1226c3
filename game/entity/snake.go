package entity

import (
	"snake-arcade/game/types"
)

// Snake is the player-controlled path. Body is head-first: Body[0] is the
// head and the last element is the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Point // committed this tick
	Pending   types.Point // buffered from input, committed on the next tick
}

func NewSnake(startPos types.Point, dir types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		Pending:   dir,
	}
}

// NewSnakeFromBody builds a snake from an explicit head-first body.
func NewSnakeFromBody(body []types.Point, dir types.Point) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{Body: b, Direction: dir, Pending: dir}
}

// Move inserts newHead at the front.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last segment. The head is never removed.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection buffers dir for the next tick. Only turns onto the other axis
// are accepted, which rules out instant reversal into the neck.
func (s *Snake) SetDirection(dir types.Point) bool {
	if !types.IsPerpendicular(s.Direction, dir) {
		return false
	}
	s.Pending = dir
	return true
}

// Commit applies the buffered direction and returns it.
func (s *Snake) Commit() types.Point {
	s.Direction = s.Pending
	return s.Direction
}

// Segments returns a copy of the body, safe to hand to observers.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
