package timekeeper

import "time"

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventFrame EventType = "frame"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type EventType
	At   time.Time
}
