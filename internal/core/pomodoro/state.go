package pomodoro

import "time"

// Phase represents the current timer mode.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
)

// State is either idle or running since Start.
// The zero value is idle.
type State struct {
	Phase Phase
	Start time.Time
}

// Idle returns the initial state.
func Idle() State {
	return State{Phase: PhaseIdle}
}

// Running returns a running state that began at start.
func Running(start time.Time) State {
	return State{Phase: PhaseRunning, Start: start}
}

// IsRunning reports whether the countdown has been started.
func (state State) IsRunning() bool {
	return state.Phase == PhaseRunning
}
