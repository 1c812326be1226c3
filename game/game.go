package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/pkg/log"

	"github.com/google/uuid"
)

// Options configures an Engine. Zero fields fall back to the defaults in
// package types; a zero Start means the centre of the grid.
type Options struct {
	TileCount int
	Start     types.Point
	Reward    int
	Seed      uint64
	Policy    manager.SpawnPolicy
	Logger    *log.Logger
}

func (o Options) withDefaults() Options {
	if o.TileCount <= 0 {
		o.TileCount = types.DefaultSurfaceSize / types.DefaultCellSize
	}
	if o.Start == (types.Point{}) {
		o.Start = types.Grid{TileCount: o.TileCount}.Centre()
	}
	if o.Reward <= 0 {
		o.Reward = types.DefaultReward
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Engine owns one game session: the grid, the snake, the target, the score
// and the lifecycle phase. It is not safe for concurrent use; the Controller
// serializes access.
type Engine struct {
	opts         Options
	grid         types.Grid
	snake        *entity.Snake
	target       types.Point
	score        int
	countdown    int
	cause        types.CollisionType
	sessionID    string
	state        *manager.StateManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	listeners    []Listener
	logger       *log.Logger
}

func NewEngine(opts Options) *Engine {
	opts = opts.withDefaults()
	grid := types.Grid{TileCount: opts.TileCount}
	collisionMgr := manager.NewCollisionManager(grid)

	e := &Engine{
		opts:         opts,
		grid:         grid,
		state:        manager.NewStateManager(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, opts.Policy, opts.Seed),
	}
	e.initialize()
	return e
}

func (e *Engine) initialize() {
	e.sessionID = uuid.New().String()
	e.logger = e.opts.Logger.With("session", e.sessionID)
	e.snake = entity.NewSnake(e.opts.Start, types.Right)
	e.score = 0
	e.countdown = 0
	e.cause = types.NoCollision
	e.state.Reset()
	e.target = e.foodMgr.GenerateFood(e.snake)
	e.logger.Debug("Session initialized on %dx%d grid, target at (%d,%d)",
		e.grid.TileCount, e.grid.TileCount, e.target.X, e.target.Y)
}

// Subscribe registers l for every future notification.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Reset discards the current session and starts a fresh one in Idle.
func (e *Engine) Reset() {
	e.initialize()
	e.emit(EventStateChanged)
}

// SetPendingDirection buffers d for the next tick. Reversals, repeats of the
// committed heading and non-unit vectors are silently rejected.
func (e *Engine) SetPendingDirection(d types.Point) bool {
	if !e.snake.SetDirection(d) {
		e.logger.Trace("Rejected direction (%d,%d) while heading (%d,%d)",
			d.X, d.Y, e.snake.Direction.X, e.snake.Direction.Y)
		return false
	}
	return true
}

// Advance runs one tick. It does nothing unless the session is Running and
// reports whether a tick was applied.
func (e *Engine) Advance() bool {
	if e.state.Phase() != types.PhaseRunning {
		return false
	}

	dir := e.snake.Commit()
	newHead := e.snake.GetHead().Add(dir)
	if collision := e.collisionMgr.CheckCollision(newHead, e.snake); collision != types.NoCollision {
		e.end(collision)
		return true
	}

	e.snake.Move(newHead)

	if e.collisionMgr.IsFoodCollision(newHead, e.target) {
		e.score += e.opts.Reward
		e.target = e.foodMgr.GenerateFood(e.snake)
		e.logger.Debug("Collected target, score %d, length %d, next target (%d,%d)",
			e.score, e.snake.Len(), e.target.X, e.target.Y)
		e.emit(EventCollected)
	} else {
		e.snake.RemoveTail()
	}

	e.logger.Trace("Head at (%d,%d)", newHead.X, newHead.Y)
	e.emit(EventMoved)
	e.emit(EventStateChanged)
	return true
}

func (e *Engine) end(cause types.CollisionType) {
	if err := e.state.Transition(types.PhaseEnded); err != nil {
		e.logger.Error("Failed to end session: %v", err)
		return
	}
	e.cause = cause
	e.logger.Info("Game over (%s collision), score %d, length %d", cause, e.score, e.snake.Len())
	e.emit(EventGameOver)
	e.emit(EventStateChanged)
}

// transition moves the lifecycle and notifies observers of the new phase.
func (e *Engine) transition(to types.Phase) error {
	from := e.state.Phase()
	if err := e.state.Transition(to); err != nil {
		return err
	}
	e.logger.Info("Phase %s -> %s", from, to)
	e.emit(EventPhaseChanged)
	return nil
}

func (e *Engine) emit(t EventType) {
	if len(e.listeners) == 0 {
		return
	}
	ev := Event{Type: t, Snapshot: e.Snapshot()}
	for _, l := range e.listeners {
		l.OnEvent(ev)
	}
}

func (e *Engine) Phase() types.Phase {
	return e.state.Phase()
}

func (e *Engine) Score() int {
	return e.score
}

// Path returns a head-first copy of the snake body.
func (e *Engine) Path() []types.Point {
	return e.snake.Segments()
}

func (e *Engine) Head() types.Point {
	return e.snake.GetHead()
}

func (e *Engine) Target() types.Point {
	return e.target
}

// Direction is the heading committed on the last tick.
func (e *Engine) Direction() types.Point {
	return e.snake.Direction
}

// Pending is the heading that the next tick will commit.
func (e *Engine) Pending() types.Point {
	return e.snake.Pending
}

func (e *Engine) Grid() types.Grid {
	return e.grid
}

func (e *Engine) SessionID() string {
	return e.sessionID
}

// Cause reports what ended the session, or NoCollision.
func (e *Engine) Cause() types.CollisionType {
	return e.cause
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		SessionID: e.sessionID,
		TileCount: e.grid.TileCount,
		Path:      e.snake.Segments(),
		Target:    e.target,
		Direction: e.snake.Direction,
		Score:     e.score,
		Phase:     e.state.Phase(),
		Countdown: e.countdown,
		Cause:     e.cause,
	}
}
