package timing

import "time"

// World is a single tick of the main loop.
type World struct {
	Delta time.Duration
	Start time.Time
	Now   time.Time
}

// Elapsed returns the time since the clock was created.
func (world World) Elapsed() time.Duration {
	if world.Now.Before(world.Start) {
		return 0
	}
	return world.Now.Sub(world.Start)
}

// NowFunc returns the current instant.
type NowFunc func() time.Time

// Clock produces one World per tick.
type Clock struct {
	now   NowFunc
	start time.Time
	last  time.Time
}

// NewClock creates a clock reading from now, or time.Now when now is nil.
func NewClock(now NowFunc) *Clock {
	if now == nil {
		now = time.Now
	}
	start := now()
	return &Clock{
		now:   now,
		start: start,
		last:  start,
	}
}

// Tick returns the elapsed time since the previous tick.
// A clock moving backwards yields a zero delta.
func (clock *Clock) Tick() World {
	current := clock.now()
	delta := current.Sub(clock.last)
	if delta < 0 {
		delta = 0
	}
	clock.last = current
	return World{
		Delta: delta,
		Start: clock.start,
		Now:   current,
	}
}

// Now reads the underlying time source without ticking.
func (clock *Clock) Now() time.Time {
	return clock.now()
}

// Start returns the instant the clock was created.
func (clock *Clock) Start() time.Time {
	return clock.start
}
