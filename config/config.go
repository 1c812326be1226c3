package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/pkg/log"
)

var (
	ErrInvalidSize     = errors.New("invalid surface or cell size")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidUI       = errors.New("unknown ui")
)

const (
	UIRaylib   = "raylib"
	UITerminal = "terminal"
)

// Config holds every runtime setting of the game.
type Config struct {
	SurfaceSize int
	CellSize    int
	Speed       time.Duration
	Countdown   int
	Reward      int
	Seed        uint64
	FairSpawn   bool
	UI          string
	Mute        bool
	MoveTick    bool
	LogLevel    log.LogLevel
	LogFile     string
}

func Default() Config {
	return Config{
		SurfaceSize: types.DefaultSurfaceSize,
		CellSize:    types.DefaultCellSize,
		Speed:       types.DefaultTickInterval,
		Countdown:   types.DefaultCountdownSteps,
		Reward:      types.DefaultReward,
		UI:          UIRaylib,
		LogLevel:    log.LogLevelInfo,
	}
}

// Parse reads flags from args (without the program name) on top of Default.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.SurfaceSize, "size", cfg.SurfaceSize, "Drawing surface size in pixels (square)")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	speed := fs.Int("speed", int(cfg.Speed/time.Millisecond), "Game speed in milliseconds per tick (lower = faster)")
	fs.IntVar(&cfg.Countdown, "countdown", cfg.Countdown, "Countdown steps before the game starts")
	fs.IntVar(&cfg.Reward, "reward", cfg.Reward, "Score per collected target")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for target placement (0 = time based)")
	fs.BoolVar(&cfg.FairSpawn, "fair-spawn", cfg.FairSpawn, "Never spawn the target under the snake")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Front-end: raylib or terminal")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound effects")
	fs.BoolVar(&cfg.MoveTick, "move-tick", cfg.MoveTick, "Play a faint click on every move")
	level := fs.String("log-level", cfg.LogLevel.String(), "Log level: error, warn, info, debug, trace")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Speed = time.Duration(*speed) * time.Millisecond
	lvl, err := log.ParseLogLevel(*level)
	if err != nil {
		return cfg, err
	}
	cfg.LogLevel = lvl

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return cfg, cfg.Validate()
}

// Validate checks that the settings describe a playable grid.
func (c Config) Validate() error {
	if c.SurfaceSize <= 0 || c.CellSize <= 0 {
		return fmt.Errorf("%w: size=%d cell=%d", ErrInvalidSize, c.SurfaceSize, c.CellSize)
	}
	if c.TileCount() < 2 {
		return fmt.Errorf("%w: %d/%d leaves fewer than 2 tiles", ErrInvalidSize, c.SurfaceSize, c.CellSize)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed %s", ErrInvalidInterval, c.Speed)
	}
	if c.Countdown <= 0 {
		return fmt.Errorf("%w: countdown %d", ErrInvalidInterval, c.Countdown)
	}
	if c.Reward <= 0 {
		return fmt.Errorf("reward must be positive, got %d", c.Reward)
	}
	if c.UI != UIRaylib && c.UI != UITerminal {
		return fmt.Errorf("%w: %q", ErrInvalidUI, c.UI)
	}
	return nil
}

// TileCount is the number of cells per grid side.
func (c Config) TileCount() int {
	return c.SurfaceSize / c.CellSize
}

// Start is the first head position, the centre cell. On the default
// 20-tile grid that is (10,10).
func (c Config) Start() types.Point {
	return types.Grid{TileCount: c.TileCount()}.Centre()
}

func (c Config) SpawnPolicy() manager.SpawnPolicy {
	if c.FairSpawn {
		return manager.SpawnFree
	}
	return manager.SpawnAnywhere
}
