package pomodoro

import "time"

// Clock supplies the current instant.
// Values returned by time.Now carry a monotonic reading, so differences
// between them never go backwards.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
