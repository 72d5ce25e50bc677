package activity

import (
	"math"

	"pomodoross/internal/core/timing"
)

// Point is a mouse position in screen pixels.
type Point struct {
	X int
	Y int
}

// Distance returns the euclidean distance between two points.
func (point Point) Distance(other Point) float64 {
	dx := float64(point.X - other.X)
	dy := float64(point.Y - other.Y)
	return math.Hypot(dx, dy)
}

// Snapshot is the device state observed during one tick.
// Buttons is indexed by mouse button; Keys holds the names of held keys.
type Snapshot struct {
	Mouse   Point
	Buttons []bool
	Keys    []string
}

// Prime stores snapshot as the previous device state without recording.
func (monitor *Monitor) Prime(snapshot Snapshot) {
	monitor.previousMouse = snapshot.Mouse
	monitor.previousMouseButtons = append(monitor.previousMouseButtons[:0], snapshot.Buttons...)
	monitor.previousKeys = make(map[string]struct{}, len(snapshot.Keys))
	for _, key := range snapshot.Keys {
		monitor.previousKeys[key] = struct{}{}
	}
	monitor.primed = true
}

// Ingest compares snapshot with the previous tick and records one sample per
// input category that saw activity. The first snapshot only sets the baseline
// for presses and mouse movement.
func (monitor *Monitor) Ingest(snapshot Snapshot, world timing.World) {
	if !monitor.primed {
		monitor.Prime(snapshot)
	}

	buttonsPressed := 0
	for _, pressed := range snapshot.Buttons {
		if pressed {
			buttonsPressed++
		}
	}

	buttonsJustPressed := 0
	for i, pressed := range snapshot.Buttons {
		if i >= len(monitor.previousMouseButtons) {
			break
		}
		if pressed && !monitor.previousMouseButtons[i] {
			buttonsJustPressed++
		}
	}

	keysJustPressed := 0
	for _, key := range snapshot.Keys {
		if _, held := monitor.previousKeys[key]; !held {
			keysJustPressed++
		}
	}

	distance := monitor.previousMouse.Distance(snapshot.Mouse)

	if buttonsPressed > 0 {
		monitor.Record(Event{Kind: MousePressed}, buttonsPressed, world.Delta)
	}
	if buttonsJustPressed > 0 {
		monitor.Record(Event{Kind: MouseJustPressed}, buttonsJustPressed, world.Delta)
	}
	if distance > 0 {
		monitor.Record(Event{Kind: MouseMove, Distance: distance}, 1, world.Delta)
	}
	if len(snapshot.Keys) > 0 {
		monitor.Record(Event{Kind: KeyPress}, len(snapshot.Keys), world.Delta)
	}
	if keysJustPressed > 0 {
		monitor.Record(Event{Kind: KeyJustPressed}, keysJustPressed, world.Delta)
	}

	monitor.Prime(snapshot)
}
