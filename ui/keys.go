package ui

import (
	"snake-arcade/game/types"
	"snake-arcade/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ActionForKey maps a raylib key code.
func ActionForKey(key int32) input.Action {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return input.Action{Kind: input.Steer, Direction: types.Up}
	case rl.KeyDown, rl.KeyS:
		return input.Action{Kind: input.Steer, Direction: types.Down}
	case rl.KeyLeft, rl.KeyA:
		return input.Action{Kind: input.Steer, Direction: types.Left}
	case rl.KeyRight, rl.KeyD:
		return input.Action{Kind: input.Steer, Direction: types.Right}
	case rl.KeyEnter, rl.KeySpace:
		return input.Action{Kind: input.Start}
	case rl.KeyP:
		return input.Action{Kind: input.Pause}
	case rl.KeyR:
		return input.Action{Kind: input.Reset}
	case rl.KeyEscape, rl.KeyQ:
		return input.Action{Kind: input.Quit}
	}
	return input.Action{}
}

// pollActions drains the keys pressed since the last frame.
func pollActions() []input.Action {
	var actions []input.Action
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if a := ActionForKey(key); a.Kind != input.None {
			actions = append(actions, a)
		}
	}
	return actions
}
