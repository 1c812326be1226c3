package manager

import (
	"errors"
	"fmt"
	"snake-arcade/game/types"
)

var ErrInvalidTransition = errors.New("invalid phase transition")

// transitions lists the legal moves of the session lifecycle. Reset is not in
// the table because it is allowed from every phase.
var transitions = map[types.Phase][]types.Phase{
	types.PhaseIdle:      {types.PhaseCountdown},
	types.PhaseCountdown: {types.PhaseRunning},
	types.PhaseRunning:   {types.PhasePaused, types.PhaseEnded},
	types.PhasePaused:    {types.PhaseRunning},
	types.PhaseEnded:     {types.PhaseCountdown},
}

// StateManager owns the lifecycle phase of one session.
type StateManager struct {
	phase types.Phase
}

func NewStateManager() *StateManager {
	return &StateManager{phase: types.PhaseIdle}
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

func (sm *StateManager) CanTransition(to types.Phase) bool {
	for _, p := range transitions[sm.phase] {
		if p == to {
			return true
		}
	}
	return false
}

// Transition moves to the given phase or reports ErrInvalidTransition.
func (sm *StateManager) Transition(to types.Phase) error {
	if !sm.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, sm.phase, to)
	}
	sm.phase = to
	return nil
}

// Reset returns to Idle from any phase.
func (sm *StateManager) Reset() {
	sm.phase = types.PhaseIdle
}
