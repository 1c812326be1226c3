package ui

import (
	"snake-arcade/game"
	"snake-arcade/input"
	"snake-arcade/pkg/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controller is what the window needs from the game.
type Controller interface {
	input.Controls
	Snapshot() game.Snapshot
}

// Run opens the window and blocks until it is closed or the user quits.
// Game ticks come from the controller's own timers; this loop only reads
// input and draws the latest snapshot.
func Run(ctrl Controller, renderer *Renderer, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}

	width, height := renderer.WindowSize()
	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()

	// Esc is handled as a regular action.
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	logger.Info("Window opened at %dx%d", width, height)

	for !rl.WindowShouldClose() {
		for _, action := range pollActions() {
			logger.Debug("Key action %s", action.Kind)
			if input.Apply(ctrl, action) {
				logger.Info("Quit requested")
				return
			}
		}
		renderer.Draw(ctrl.Snapshot())
	}
}
