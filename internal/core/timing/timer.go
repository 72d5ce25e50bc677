package timing

import "time"

// Timer counts down to zero while unpaused.
type Timer struct {
	remaining time.Duration
	paused    bool
}

// NewTimer returns a running countdown of duration.
func NewTimer(duration time.Duration) Timer {
	if duration < 0 {
		duration = 0
	}
	return Timer{remaining: duration}
}

// Remaining returns the time left.
func (timer *Timer) Remaining() time.Duration {
	return timer.remaining
}

// Done reports whether the countdown reached zero.
func (timer *Timer) Done() bool {
	return timer.remaining == 0
}

// Paused reports whether the countdown is frozen.
func (timer *Timer) Paused() bool {
	return timer.paused
}

// SetPaused freezes or unfreezes the countdown.
func (timer *Timer) SetPaused(paused bool) {
	timer.paused = paused
}

// Reset restarts the countdown from duration and unpauses it.
func (timer *Timer) Reset(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	timer.remaining = duration
	timer.paused = false
}

// Advance subtracts delta unless paused, saturating at zero.
func (timer *Timer) Advance(delta time.Duration) {
	if timer.paused {
		return
	}
	timer.remaining = saturatingSub(timer.remaining, delta)
}

// Update advances by the tick delta.
func (timer *Timer) Update(world World) {
	timer.Advance(world.Delta)
}
