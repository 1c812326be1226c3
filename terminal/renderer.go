package terminal

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each tile is two columns wide so the board looks square in most fonts.
const cellWidth = 2

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xcaffbf)).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x90e0ef))
	styleTarget = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xa7c957)).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

const (
	runeHead   = '@'
	runeBody   = 'o'
	runeTarget = '*'
	runeFloor  = '·'
)

// Renderer draws snapshots onto a tcell screen. The board occupies the top
// left corner with a one character border and a status line underneath.
type Renderer struct {
	screen tcell.Screen
	board  *manager.ScoreBoard
}

func NewRenderer(screen tcell.Screen, board *manager.ScoreBoard) *Renderer {
	return &Renderer{screen: screen, board: board}
}

// Origin returns the screen coordinates of tile p.
func Origin(p types.Point) (x, y int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()

	n := s.TileCount
	r.drawBorder(n*cellWidth+2, n+2)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sx, sy := Origin(types.Point{X: x, Y: y})
			r.screen.SetContent(sx, sy, runeFloor, nil, styleFloor)
		}
	}

	tx, ty := Origin(s.Target)
	r.screen.SetContent(tx, ty, runeTarget, nil, styleTarget)

	// Body first so the head is always on top.
	for i := len(s.Path) - 1; i >= 0; i-- {
		sx, sy := Origin(s.Path[i])
		if i == 0 {
			r.screen.SetContent(sx, sy, runeHead, nil, styleHead)
		} else {
			r.screen.SetContent(sx, sy, runeBody, nil, styleBody)
		}
	}

	best := s.Score
	if r.board != nil && r.board.GetHighScore() > best {
		best = r.board.GetHighScore()
	}
	r.drawText(0, n+2, styleStatus, fmt.Sprintf("Score: %d  Best: %d  Length: %d", s.Score, best, len(s.Path)))
	r.drawText(0, n+3, styleFloor, "arrows/wasd steer  enter start  p pause  r reset  q quit")

	if banner := Banner(s); banner != "" {
		w := n*cellWidth + 2
		r.drawText((w-len(banner))/2, (n+2)/2, styleBanner, banner)
	}

	r.screen.Show()
}

// Banner is the overlay text for the snapshot's phase, or "" while running.
func Banner(s game.Snapshot) string {
	switch s.Phase {
	case types.PhaseIdle:
		return " PRESS ENTER "
	case types.PhaseCountdown:
		return fmt.Sprintf(" %d ", s.Countdown)
	case types.PhasePaused:
		return " PAUSED "
	case types.PhaseEnded:
		return fmt.Sprintf(" GAME OVER (%s) ", s.Cause)
	default:
		return ""
	}
}

func (r *Renderer) drawBorder(w, h int) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, styleBorder)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, styleBorder)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, styleBorder)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, styleBorder)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, styleBorder)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, styleBorder)
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
