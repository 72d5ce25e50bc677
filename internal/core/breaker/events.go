package breaker

import "time"

// State represents the current scheduler phase.
type State string

const (
	StateWorking  State = "working"
	StateBreaking State = "breaking"
)

// Other returns the opposite phase.
func (state State) Other() State {
	if state == StateBreaking {
		return StateWorking
	}
	return StateBreaking
}

// EventType defines the kind of transition.
type EventType string

const (
	EventStartBreak EventType = "start_break"
	EventEndBreak   EventType = "end_break"
)

// Event describes a transition performed during Update.
type Event struct {
	Type EventType
	From State
	To   State
	At   time.Time
}
