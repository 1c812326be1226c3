package input

import (
	"testing"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
)

type fakeControls struct {
	calls []string
	steer []types.Point
}

func (f *fakeControls) Start() bool { f.calls = append(f.calls, "start"); return true }
func (f *fakeControls) Pause() bool { f.calls = append(f.calls, "pause"); return true }
func (f *fakeControls) Reset()      { f.calls = append(f.calls, "reset") }
func (f *fakeControls) Steer(d types.Point) bool {
	f.calls = append(f.calls, "steer")
	f.steer = append(f.steer, d)
	return true
}

func TestFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Action
	}{
		{'w', Action{Kind: Steer, Direction: types.Up}},
		{'S', Action{Kind: Steer, Direction: types.Down}},
		{'a', Action{Kind: Steer, Direction: types.Left}},
		{'D', Action{Kind: Steer, Direction: types.Right}},
		{' ', Action{Kind: Start}},
		{'p', Action{Kind: Pause}},
		{'R', Action{Kind: Reset}},
		{'q', Action{Kind: Quit}},
		{'x', Action{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			assert.Equal(t, tt.want, FromRune(tt.r))
		})
	}
}

func TestApply(t *testing.T) {
	c := &fakeControls{}

	assert.False(t, Apply(c, Action{Kind: Start}))
	assert.False(t, Apply(c, Action{Kind: Steer, Direction: types.Up}))
	assert.False(t, Apply(c, Action{Kind: Pause}))
	assert.False(t, Apply(c, Action{Kind: Reset}))
	assert.False(t, Apply(c, Action{}))
	assert.True(t, Apply(c, Action{Kind: Quit}))

	assert.Equal(t, []string{"start", "steer", "pause", "reset"}, c.calls)
	assert.Equal(t, []types.Point{types.Up}, c.steer)
}
