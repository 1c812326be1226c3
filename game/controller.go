package game

import (
	"sync"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/pkg/log"
)

type ControllerOptions struct {
	TickInterval      time.Duration
	CountdownInterval time.Duration
	CountdownSteps    int
	Scheduler         Scheduler
	ScoreBoard        *manager.ScoreBoard
	Logger            *log.Logger
}

func (o ControllerOptions) withDefaults() ControllerOptions {
	if o.TickInterval <= 0 {
		o.TickInterval = types.DefaultTickInterval
	}
	if o.CountdownInterval <= 0 {
		o.CountdownInterval = types.DefaultCountdownInterval
	}
	if o.CountdownSteps <= 0 {
		o.CountdownSteps = types.DefaultCountdownSteps
	}
	if o.Scheduler == nil {
		o.Scheduler = NewTickerScheduler()
	}
	if o.ScoreBoard == nil {
		o.ScoreBoard = manager.NewScoreBoard()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Controller drives an Engine through its lifecycle: the start countdown,
// the repeating game tick, pause/resume and reset. Every entry point, user
// operations and timer callbacks alike, runs under one lock, so no two
// mutations of the session ever interleave.
//
// Each scheduled callback captures the epoch it was created in. Reset, pause
// and game over bump the epoch, so a callback that was already in flight
// cannot touch a session that has moved on.
type Controller struct {
	mu     sync.Mutex
	engine *Engine
	opts   ControllerOptions
	logger *log.Logger

	epoch          uint64
	countdownTimer Timer
	tickTimer      Timer
}

func NewController(engine *Engine, opts ControllerOptions) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		engine: engine,
		opts:   opts,
		logger: opts.Logger,
	}
}

// Start begins the countdown from Idle, or from Ended after re-initializing
// the session. It is ignored in every other phase.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.engine.Phase() {
	case types.PhaseIdle:
	case types.PhaseEnded:
		c.engine.Reset()
	default:
		c.logger.Debug("Ignoring start while %s", c.engine.Phase())
		return false
	}

	c.epoch++
	c.engine.countdown = c.opts.CountdownSteps
	if err := c.engine.transition(types.PhaseCountdown); err != nil {
		c.logger.Error("Failed to start countdown: %v", err)
		return false
	}

	epoch := c.epoch
	c.countdownTimer = c.opts.Scheduler.Every(c.opts.CountdownInterval, func() {
		c.onCountdown(epoch)
	})
	return true
}

func (c *Controller) onCountdown(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch || c.engine.Phase() != types.PhaseCountdown {
		return
	}

	c.engine.countdown--
	if c.engine.countdown > 0 {
		c.engine.emit(EventCountdownTick)
		return
	}

	stopTimer(&c.countdownTimer)
	if err := c.engine.transition(types.PhaseRunning); err != nil {
		c.logger.Error("Failed to start running: %v", err)
		return
	}

	// The first move happens as soon as the countdown finishes.
	c.tick()
	if c.engine.Phase() == types.PhaseRunning {
		c.scheduleTicks()
	}
}

func (c *Controller) scheduleTicks() {
	epoch := c.epoch
	c.tickTimer = c.opts.Scheduler.Every(c.opts.TickInterval, func() {
		c.onTick(epoch)
	})
}

func (c *Controller) onTick(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch || c.engine.Phase() != types.PhaseRunning {
		return
	}
	c.tick()
}

func (c *Controller) tick() {
	c.engine.Advance()
	if c.engine.Phase() != types.PhaseEnded {
		return
	}

	c.epoch++
	stopTimer(&c.tickTimer)
	c.opts.ScoreBoard.AddGame(manager.GameRecord{
		SessionID: c.engine.SessionID(),
		Score:     c.engine.Score(),
		Length:    len(c.engine.snake.Body),
		EndTime:   time.Now(),
	})
}

// Pause toggles between Running and Paused. The tick timer is cancelled on
// pause and a fresh one is scheduled on resume.
func (c *Controller) Pause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.engine.Phase() {
	case types.PhaseRunning:
		c.epoch++
		stopTimer(&c.tickTimer)
		if err := c.engine.transition(types.PhasePaused); err != nil {
			c.logger.Error("Failed to pause: %v", err)
			return false
		}
	case types.PhasePaused:
		c.epoch++
		if err := c.engine.transition(types.PhaseRunning); err != nil {
			c.logger.Error("Failed to resume: %v", err)
			return false
		}
		c.scheduleTicks()
	default:
		c.logger.Debug("Ignoring pause while %s", c.engine.Phase())
		return false
	}
	return true
}

// Reset cancels all pending callbacks and returns to a fresh Idle session.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	stopTimer(&c.countdownTimer)
	stopTimer(&c.tickTimer)
	c.engine.Reset()
	c.logger.Info("Session reset")
}

// Steer buffers a direction change for the next tick.
func (c *Controller) Steer(d types.Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.SetPendingDirection(d)
}

// Subscribe registers l on the underlying engine.
func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Subscribe(l)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Snapshot()
}

func (c *Controller) Phase() types.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Phase()
}

func (c *Controller) ScoreBoard() *manager.ScoreBoard {
	return c.opts.ScoreBoard
}

// Close cancels every timer. The session state is left as is.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	stopTimer(&c.countdownTimer)
	stopTimer(&c.tickTimer)
}

func stopTimer(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
