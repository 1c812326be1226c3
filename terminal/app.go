package terminal

import (
	"context"

	"snake-arcade/game"
	"snake-arcade/input"
	"snake-arcade/pkg/log"

	"github.com/gdamore/tcell/v2"
)

// Controller is what the terminal front-end needs from the game.
type Controller interface {
	input.Controls
	Snapshot() game.Snapshot
	Subscribe(l game.Listener)
}

// App wires a tcell screen to a controller: key presses become actions and
// every engine notification schedules a redraw.
type App struct {
	screen   tcell.Screen
	ctrl     Controller
	renderer *Renderer
	logger   *log.Logger
	redraw   chan struct{}
}

func NewApp(screen tcell.Screen, ctrl Controller, renderer *Renderer, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		screen:   screen,
		ctrl:     ctrl,
		renderer: renderer,
		logger:   logger,
		redraw:   make(chan struct{}, 1),
	}
	ctrl.Subscribe(game.ListenerFunc(func(game.Event) { a.requestRedraw() }))
	return a
}

// Listeners run under the controller lock, so this only signals.
func (a *App) requestRedraw() {
	select {
	case a.redraw <- struct{}{}:
	default:
	}
}

// Run blocks until the user quits or ctx is cancelled. The caller owns the
// screen and is responsible for Init and Fini.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.renderer.Draw(a.ctrl.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.redraw:
			a.renderer.Draw(a.ctrl.Snapshot())
		case ev := <-events:
			if a.handle(ev) {
				a.logger.Info("Quit requested")
				return nil
			}
		}
	}
}

func (a *App) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := ActionForKey(ev)
		if action.Kind != input.None {
			a.logger.Debug("Key action %s", action.Kind)
		}
		return input.Apply(a.ctrl, action)
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Draw(a.ctrl.Snapshot())
	}
	return false
}
