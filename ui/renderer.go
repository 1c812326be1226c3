package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	statusHeight = 40 // Strip below the board for score text
	fontSize     = 20
)

var (
	colorBackground = rl.NewColor(0x0a, 0x2a, 0x2a, 255)
	colorGrid       = rl.NewColor(167, 201, 87, 20)
	colorTarget     = rl.NewColor(0xa7, 0xc9, 0x57, 255)
	colorHead       = rl.NewColor(0xca, 0xff, 0xbf, 255)
	colorBody       = rl.NewColor(0x90, 0xe0, 0xef, 255)
	colorStatus     = rl.NewColor(0x12, 0x3c, 0x3c, 255)
	colorOverlay    = rl.NewColor(0, 0, 0, 160)
)

type Renderer struct {
	cellSize  int32
	tileCount int32
	board     *manager.ScoreBoard
}

func NewRenderer(tileCount, cellSize int, board *manager.ScoreBoard) *Renderer {
	return &Renderer{
		cellSize:  int32(cellSize),
		tileCount: int32(tileCount),
		board:     board,
	}
}

// WindowSize is the board plus the status strip.
func (r *Renderer) WindowSize() (width, height int32) {
	side := r.cellSize * r.tileCount
	return side, side + statusHeight
}

func (r *Renderer) Draw(s game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	side := r.cellSize * r.tileCount
	for i := int32(0); i <= r.tileCount; i++ {
		rl.DrawLine(i*r.cellSize, 0, i*r.cellSize, side, colorGrid)
		rl.DrawLine(0, i*r.cellSize, side, i*r.cellSize, colorGrid)
	}

	r.fillCell(s.Target, 2, colorTarget)

	for i := len(s.Path) - 1; i >= 0; i-- {
		if i == 0 {
			r.fillCell(s.Path[i], 1, colorHead)
		} else {
			r.fillCell(s.Path[i], 2, colorBody)
		}
	}

	r.drawStatus(s, side)
	r.drawOverlay(s, side)
	rl.EndDrawing()
}

func (r *Renderer) fillCell(p types.Point, inset int32, color rl.Color) {
	rl.DrawRectangle(
		int32(p.X)*r.cellSize+inset,
		int32(p.Y)*r.cellSize+inset,
		r.cellSize-2*inset, r.cellSize-2*inset, color)
}

func (r *Renderer) drawStatus(s game.Snapshot, side int32) {
	rl.DrawRectangle(0, side, side, statusHeight, colorStatus)

	best := s.Score
	if r.board != nil && r.board.GetHighScore() > best {
		best = r.board.GetHighScore()
	}
	text := fmt.Sprintf("Score: %d   Best: %d", s.Score, best)
	rl.DrawText(text, 10, side+(statusHeight-fontSize)/2, fontSize, rl.RayWhite)
}

func (r *Renderer) drawOverlay(s game.Snapshot, side int32) {
	text, size := OverlayText(s)
	if text == "" {
		return
	}

	rl.DrawRectangle(0, 0, side, side, colorOverlay)
	width := rl.MeasureText(text, size)
	rl.DrawText(text, (side-width)/2, (side-size)/2, size, colorHead)
}

// OverlayText returns the banner for the snapshot's phase and its font size.
// Running has no banner.
func OverlayText(s game.Snapshot) (string, int32) {
	switch s.Phase {
	case types.PhaseIdle:
		return "Press Enter to start", fontSize
	case types.PhaseCountdown:
		return fmt.Sprintf("%d", s.Countdown), fontSize * 4
	case types.PhasePaused:
		return "Paused", fontSize * 2
	case types.PhaseEnded:
		return fmt.Sprintf("Game Over! Score: %d", s.Score), fontSize
	default:
		return "", 0
	}
}
