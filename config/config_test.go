package config

import (
	"errors"
	"io"
	"testing"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.TileCount())
	assert.Equal(t, types.Point{X: 10, Y: 10}, cfg.Start())
	assert.Equal(t, 200*time.Millisecond, cfg.Speed)
	assert.Equal(t, 3, cfg.Countdown)
	assert.Equal(t, 10, cfg.Reward)
	assert.Equal(t, UIRaylib, cfg.UI)
	assert.Equal(t, log.LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, manager.SpawnAnywhere, cfg.SpawnPolicy())
	assert.NotZero(t, cfg.Seed, "a zero seed is replaced")
	assert.False(t, cfg.MoveTick)
}

func TestParse_Flags(t *testing.T) {
	cfg, err := Parse([]string{
		"-size", "300", "-cell", "10", "-speed", "120", "-seed", "7",
		"-fair-spawn", "-ui", "terminal", "-mute", "-move-tick", "-log-level", "debug",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TileCount())
	assert.Equal(t, types.Point{X: 15, Y: 15}, cfg.Start())
	assert.Equal(t, 120*time.Millisecond, cfg.Speed)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, manager.SpawnFree, cfg.SpawnPolicy())
	assert.Equal(t, UITerminal, cfg.UI)
	assert.True(t, cfg.Mute)
	assert.True(t, cfg.MoveTick)
	assert.Equal(t, log.LogLevelDebug, cfg.LogLevel)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero cell", []string{"-cell", "0"}, ErrInvalidSize},
		{"negative size", []string{"-size", "-5"}, ErrInvalidSize},
		{"single tile", []string{"-size", "30", "-cell", "20"}, ErrInvalidSize},
		{"zero speed", []string{"-speed", "0"}, ErrInvalidInterval},
		{"zero countdown", []string{"-countdown", "0"}, ErrInvalidInterval},
		{"unknown ui", []string{"-ui", "web"}, ErrInvalidUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, io.Discard)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParse_BadLogLevel(t *testing.T) {
	_, err := Parse([]string{"-log-level", "loud"}, io.Discard)
	assert.Error(t, err)
}

func TestParse_UnknownFlag(t *testing.T) {
	_, err := Parse([]string{"-nope"}, io.Discard)
	assert.Error(t, err)
}
