package game

import (
	"sync/atomic"
	"testing"
	"time"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualScheduler_FiresInOrder(t *testing.T) {
	sched := NewManualScheduler()
	var fired []string

	sched.Every(300*time.Millisecond, func() { fired = append(fired, "slow") })
	sched.Every(100*time.Millisecond, func() { fired = append(fired, "fast") })

	sched.Advance(300 * time.Millisecond)

	assert.Equal(t, []string{"fast", "fast", "slow", "fast"}, fired)
	assert.Equal(t, 300*time.Millisecond, sched.Now())
}

func TestManualScheduler_Stop(t *testing.T) {
	sched := NewManualScheduler()
	count := 0
	timer := sched.Every(time.Second, func() { count++ })

	sched.Advance(2 * time.Second)
	timer.Stop()
	timer.Stop()
	sched.Advance(5 * time.Second)

	assert.Equal(t, 2, count)
	assert.Equal(t, 0, sched.Pending())
}

func TestManualScheduler_CallbackCanReschedule(t *testing.T) {
	sched := NewManualScheduler()
	var events []time.Duration
	var first Timer
	first = sched.Every(time.Second, func() {
		events = append(events, sched.Now())
		first.Stop()
		sched.Every(250*time.Millisecond, func() {
			events = append(events, sched.Now())
		})
	})

	sched.Advance(1500 * time.Millisecond)

	assert.Equal(t, []time.Duration{
		time.Second,
		1250 * time.Millisecond,
		1500 * time.Millisecond,
	}, events)
}

func TestManualScheduler_NonPositiveIntervalIsClamped(t *testing.T) {
	sched := NewManualScheduler()
	zero, negative := 0, 0
	sched.Every(0, func() { zero++ })
	sched.Every(-time.Second, func() { negative++ })

	sched.Advance(5 * MinInterval)

	assert.Equal(t, 5, zero)
	assert.Equal(t, 5, negative)
}

func TestTickerScheduler_NonPositiveIntervalIsClamped(t *testing.T) {
	sched := NewTickerScheduler()
	var count atomic.Int32

	var timer Timer
	require.NotPanics(t, func() {
		timer = sched.Every(0, func() { count.Add(1) })
	})
	defer timer.Stop()

	require.Eventually(t, func() bool { return count.Load() >= 1 }, time.Second, time.Millisecond)
}

func TestTickerScheduler(t *testing.T) {
	sched := NewTickerScheduler()
	var count atomic.Int32

	timer := sched.Every(5*time.Millisecond, func() { count.Add(1) })
	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)

	timer.Stop()
	timer.Stop()
	// Allow an in-flight callback to finish before sampling.
	time.Sleep(20 * time.Millisecond)
	stopped := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, count.Load())
}

func TestController_WithTickerScheduler(t *testing.T) {
	e := NewEngine(Options{Seed: 2, Logger: quietLogger()})
	e.target = e.Head()
	c := NewController(e, ControllerOptions{
		TickInterval:      2 * time.Millisecond,
		CountdownInterval: time.Millisecond,
		Scheduler:         NewTickerScheduler(),
		Logger:            quietLogger(),
	})
	defer c.Close()

	require.True(t, c.Start())
	require.Eventually(t, func() bool {
		return c.Phase() == types.PhaseEnded
	}, 2*time.Second, time.Millisecond)
	assert.Equal(t, 1, c.ScoreBoard().GetGamesPlayed())
}
