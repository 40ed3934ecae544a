package model

import "time"

// DefaultWorkDuration is the length of one work session.
const DefaultWorkDuration = 25 * time.Minute

// TimerConfig contains immutable settings for the pomodoro timer.
type TimerConfig struct {
	WorkDuration time.Duration
}

// DefaultTimerConfig returns the standard 25 minute work session.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{WorkDuration: DefaultWorkDuration}
}
