package activity

import "time"

// Kind identifies a category of user input.
type Kind int

const (
	KeyPress Kind = iota
	KeyJustPressed
	MousePressed
	MouseJustPressed
	MouseMove
)

func (kind Kind) String() string {
	switch kind {
	case KeyPress:
		return "key_press"
	case KeyJustPressed:
		return "key_just_pressed"
	case MousePressed:
		return "mouse_pressed"
	case MouseJustPressed:
		return "mouse_just_pressed"
	case MouseMove:
		return "mouse_move"
	default:
		return "unknown"
	}
}

// Event is a raw input event. Distance is only set for MouseMove.
type Event struct {
	Kind     Kind
	Distance float64
}

// Sample is a weighted event stored by the Monitor.
type Sample struct {
	Event      Event
	ObservedAt time.Time
	Weight     float64
}
