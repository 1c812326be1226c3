package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/pkg/log"
	"snake-arcade/terminal"
	"snake-arcade/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}

// realMain returns the process exit code so that every deferred cleanup has
// run before main exits.
func realMain(args []string, stderr io.Writer) int {
	cfg, err := config.Parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		log.Error("Invalid configuration: %v", err)
		return exitUsage
	}

	logger := log.Default()
	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Error("Failed to open log file: %v", err)
			return exitFailed
		}
		defer f.Close()
		logger.SetOutput(f)
		defer logger.SetOutput(stderr)
	} else if cfg.UI == config.UITerminal {
		// Anything written to stderr would tear the terminal UI.
		logger.SetOutput(io.Discard)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("%v", err)
		return exitFailed
	}
	return exitOK
}

func run(cfg config.Config, logger *log.Logger) error {
	engine := game.NewEngine(game.Options{
		TileCount: cfg.TileCount(),
		Start:     cfg.Start(),
		Reward:    cfg.Reward,
		Seed:      cfg.Seed,
		Policy:    cfg.SpawnPolicy(),
		Logger:    logger,
	})

	board := manager.NewScoreBoard()
	ctrl := game.NewController(engine, game.ControllerOptions{
		TickInterval:   cfg.Speed,
		CountdownSteps: cfg.Countdown,
		ScoreBoard:     board,
		Logger:         logger,
	})
	defer ctrl.Close()

	if !cfg.Mute {
		player, err := audio.NewPlayer(1.0, logger)
		if err != nil {
			// The game is playable without sound.
			logger.Warn("Audio disabled: %v", err)
		} else {
			defer player.Close()
			player.SetMoveTick(cfg.MoveTick)
			ctrl.Subscribe(player)
		}
	}

	logger.Info("Starting %s front-end: %d tiles, %v per tick, seed %d",
		cfg.UI, cfg.TileCount(), cfg.Speed, cfg.Seed)

	switch cfg.UI {
	case config.UITerminal:
		return runTerminal(ctrl, board, logger)
	default:
		ui.Run(ctrl, ui.NewRenderer(cfg.TileCount(), cfg.CellSize, board), logger)
		return nil
	}
}

func runTerminal(ctrl *game.Controller, board *manager.ScoreBoard, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(screen, ctrl, terminal.NewRenderer(screen, board), logger)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
