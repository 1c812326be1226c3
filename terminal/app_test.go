package terminal

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/pkg/log"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	mu       sync.Mutex
	snap     game.Snapshot
	listener game.Listener
	pauses   int
	steers   []types.Point
}

func (f *fakeController) Start() bool { return true }
func (f *fakeController) Reset()      {}

func (f *fakeController) Pause() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses++
	return true
}

func (f *fakeController) Steer(d types.Point) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steers = append(f.steers, d)
	return true
}

func (f *fakeController) Snapshot() game.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *fakeController) Subscribe(l game.Listener) { f.listener = l }

func (f *fakeController) pauseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pauses
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0, log.LogLevelError)
}

func TestApp_RunHandlesKeysUntilQuit(t *testing.T) {
	screen := newScreen(t)
	ctrl := &fakeController{snap: testSnapshot()}
	app := NewApp(screen, ctrl, NewRenderer(screen, nil), quietLogger())
	require.NotNil(t, ctrl.listener)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	require.Eventually(t, func() bool { return ctrl.pauseCount() == 1 }, time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after quit")
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	assert.Equal(t, []types.Point{types.Up}, ctrl.steers)
}

func TestApp_RedrawsOnEvent(t *testing.T) {
	screen := newScreen(t)
	ctrl := &fakeController{snap: testSnapshot()}
	app := NewApp(screen, ctrl, NewRenderer(screen, nil), quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	ctrl.mu.Lock()
	ctrl.snap.Score = 70
	ctrl.mu.Unlock()
	ctrl.listener.OnEvent(game.Event{Type: game.EventStateChanged})

	require.Eventually(t, func() bool {
		return lineContains(screen, 12, "Score: 70")
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestApp_RedrawRequestsCoalesce(t *testing.T) {
	screen := newScreen(t)
	ctrl := &fakeController{snap: testSnapshot()}
	app := NewApp(screen, ctrl, NewRenderer(screen, nil), quietLogger())

	for i := 0; i < 10; i++ {
		ctrl.listener.OnEvent(game.Event{Type: game.EventMoved})
	}
	assert.Len(t, app.redraw, 1)
}

func lineContains(screen tcell.Screen, y int, text string) bool {
	return strings.Contains(lineAt(screen, y, 60), text)
}
