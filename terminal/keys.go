package terminal

import (
	"snake-arcade/game/types"
	"snake-arcade/input"

	"github.com/gdamore/tcell/v2"
)

// ActionForKey translates a terminal key press.
func ActionForKey(ev *tcell.EventKey) input.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Action{Kind: input.Steer, Direction: types.Up}
	case tcell.KeyDown:
		return input.Action{Kind: input.Steer, Direction: types.Down}
	case tcell.KeyLeft:
		return input.Action{Kind: input.Steer, Direction: types.Left}
	case tcell.KeyRight:
		return input.Action{Kind: input.Steer, Direction: types.Right}
	case tcell.KeyEnter:
		return input.Action{Kind: input.Start}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Action{Kind: input.Quit}
	case tcell.KeyRune:
		return input.FromRune(ev.Rune())
	}
	return input.Action{}
}
