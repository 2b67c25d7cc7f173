package timer

import "time"

// EventType defines the type of runner event.
type EventType string

const (
	EventStateChange    EventType = "state_change"
	EventTick           EventType = "tick"
	EventExpired        EventType = "expired"
	EventDurationChange EventType = "duration_change"
)

// Event carries the state after a transition to observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}
