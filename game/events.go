package game

import "snake-arcade/game/types"

// EventType identifies a notification emitted to observers.
type EventType int

const (
	EventStateChanged EventType = iota
	EventMoved
	EventCollected
	EventGameOver
	EventCountdownTick
	EventPhaseChanged
)

func (t EventType) String() string {
	switch t {
	case EventStateChanged:
		return "state_changed"
	case EventMoved:
		return "moved"
	case EventCollected:
		return "collected"
	case EventGameOver:
		return "game_over"
	case EventCountdownTick:
		return "countdown_tick"
	case EventPhaseChanged:
		return "phase_changed"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of everything a renderer needs.
type Snapshot struct {
	SessionID string
	TileCount int
	Path      []types.Point
	Target    types.Point
	Direction types.Point
	Score     int
	Phase     types.Phase
	Countdown int
	Cause     types.CollisionType
}

// Head returns the first path segment.
func (s Snapshot) Head() types.Point {
	return s.Path[0]
}

type Event struct {
	Type     EventType
	Snapshot Snapshot
}

// Listener receives notifications synchronously. Listeners must not call back
// into the Engine or Controller that emitted the event.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }
