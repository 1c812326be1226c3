package input

import (
	"snake-arcade/game/types"
)

// Kind is a device-independent user request.
type Kind int

const (
	None Kind = iota
	Steer
	Start
	Pause
	Reset
	Quit
)

func (k Kind) String() string {
	switch k {
	case Steer:
		return "steer"
	case Start:
		return "start"
	case Pause:
		return "pause"
	case Reset:
		return "reset"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Action is what a key press means to the game.
type Action struct {
	Kind      Kind
	Direction types.Point // set for Steer
}

// Controls is the subset of the lifecycle controller that input drives.
type Controls interface {
	Start() bool
	Pause() bool
	Reset()
	Steer(d types.Point) bool
}

// FromRune maps printable keys shared by every front-end: WASD to steer,
// space to start, p to pause, r to reset, q to quit.
func FromRune(r rune) Action {
	switch r {
	case 'w', 'W':
		return Action{Kind: Steer, Direction: types.Up}
	case 's', 'S':
		return Action{Kind: Steer, Direction: types.Down}
	case 'a', 'A':
		return Action{Kind: Steer, Direction: types.Left}
	case 'd', 'D':
		return Action{Kind: Steer, Direction: types.Right}
	case ' ':
		return Action{Kind: Start}
	case 'p', 'P':
		return Action{Kind: Pause}
	case 'r', 'R':
		return Action{Kind: Reset}
	case 'q', 'Q':
		return Action{Kind: Quit}
	default:
		return Action{}
	}
}

// Apply forwards a to c and reports whether the user asked to quit.
func Apply(c Controls, a Action) (quit bool) {
	switch a.Kind {
	case Steer:
		c.Steer(a.Direction)
	case Start:
		c.Start()
	case Pause:
		c.Pause()
	case Reset:
		c.Reset()
	case Quit:
		return true
	}
	return false
}
