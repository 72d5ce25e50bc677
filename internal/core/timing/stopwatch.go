package timing

import (
	"math"
	"time"
)

const maxDuration = time.Duration(math.MaxInt64)

// Stopwatch accumulates elapsed time while unpaused.
type Stopwatch struct {
	elapsed time.Duration
	paused  bool
}

// NewStopwatch returns a running stopwatch at zero.
func NewStopwatch() Stopwatch {
	return Stopwatch{}
}

// StopwatchAt returns a running stopwatch that starts at start.
func StopwatchAt(start time.Duration) Stopwatch {
	if start < 0 {
		start = 0
	}
	return Stopwatch{elapsed: start}
}

// Elapsed returns the accumulated time.
func (stopwatch *Stopwatch) Elapsed() time.Duration {
	return stopwatch.elapsed
}

// Paused reports whether the stopwatch is frozen.
func (stopwatch *Stopwatch) Paused() bool {
	return stopwatch.paused
}

// SetPaused freezes or unfreezes the stopwatch.
func (stopwatch *Stopwatch) SetPaused(paused bool) {
	stopwatch.paused = paused
}

// Restart zeroes and unpauses the stopwatch.
func (stopwatch *Stopwatch) Restart() {
	stopwatch.elapsed = 0
	stopwatch.paused = false
}

// Advance adds delta unless paused.
func (stopwatch *Stopwatch) Advance(delta time.Duration) {
	if stopwatch.paused {
		return
	}
	stopwatch.elapsed = saturatingAdd(stopwatch.elapsed, delta)
}

// Update advances by the tick delta.
func (stopwatch *Stopwatch) Update(world World) {
	stopwatch.Advance(world.Delta)
}

func saturatingAdd(value, delta time.Duration) time.Duration {
	if delta <= 0 {
		return value
	}
	if value > maxDuration-delta {
		return maxDuration
	}
	return value + delta
}

func saturatingSub(value, delta time.Duration) time.Duration {
	if delta <= 0 {
		return value
	}
	if delta >= value {
		return 0
	}
	return value - delta
}

// Remaining returns total minus elapsed, never below zero.
func Remaining(total, elapsed time.Duration) time.Duration {
	return saturatingSub(total, elapsed)
}
