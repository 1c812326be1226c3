package entity

import (
	"testing"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
)

func TestSnake_MoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	s.Move(types.Point{X: 6, Y: 5})
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}, s.Body)
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.GetHead())
	assert.Equal(t, types.Point{X: 5, Y: 5}, s.GetTail())

	s.RemoveTail()
	assert.Equal(t, []types.Point{{X: 6, Y: 5}}, s.Body)

	s.RemoveTail()
	assert.Equal(t, 1, s.Len(), "the head is never removed")
}

func TestSnake_SetDirection(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	assert.False(t, s.SetDirection(types.Left))
	assert.Equal(t, types.Right, s.Pending)

	assert.True(t, s.SetDirection(types.Down))
	assert.Equal(t, types.Down, s.Pending)
	assert.Equal(t, types.Right, s.Direction)

	assert.Equal(t, types.Down, s.Commit())
	assert.Equal(t, types.Down, s.Direction)
	assert.False(t, s.SetDirection(types.Up))
}

func TestSnake_SegmentsIsACopy(t *testing.T) {
	body := []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}
	s := NewSnakeFromBody(body, types.Up)
	body[0] = types.Point{X: 9, Y: 9}

	seg := s.Segments()
	seg[1] = types.Point{X: 8, Y: 8}

	assert.Equal(t, []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}, s.Body)
	assert.True(t, s.Occupies(types.Point{X: 1, Y: 2}))
	assert.False(t, s.Occupies(types.Point{X: 8, Y: 8}))
}
