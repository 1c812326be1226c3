package types

import "time"

// Point is a discrete grid coordinate. It doubles as a unit direction vector.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Cardinal directions. Y grows downwards, so Up is (0,-1).
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// IsUnit reports whether d is one of the four cardinal directions.
func IsUnit(d Point) bool {
	return d == Up || d == Down || d == Left || d == Right
}

// IsPerpendicular reports whether d moves on the other axis than current.
// A reversal or a repeat of current is never perpendicular.
func IsPerpendicular(current, d Point) bool {
	if !IsUnit(d) {
		return false
	}
	if current.X != 0 {
		return d.X == 0
	}
	return d.Y == 0
}

// Grid represents the square playfield.
type Grid struct {
	TileCount int
}

// Contains reports whether p lies in [0, TileCount) on both axes.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.TileCount && p.Y >= 0 && p.Y < g.TileCount
}

// Centre is where a fresh path begins: (10,10) on the default 20-cell grid.
func (g Grid) Centre() Point {
	return Point{X: g.TileCount / 2, Y: g.TileCount / 2}
}

// Cells is the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.TileCount * g.TileCount
}

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseRunning
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Game constants
const (
	DefaultSurfaceSize    = 400 // Pixels per side of the drawing surface
	DefaultCellSize       = 20  // Pixels per cell
	DefaultReward         = 10  // Score per collected target
	DefaultCountdownSteps = 3

	DefaultTickInterval      = 200 * time.Millisecond
	DefaultCountdownInterval = time.Second
)
