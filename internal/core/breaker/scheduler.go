package breaker

import (
	"time"

	"pomodoross/internal/core/model"
	"pomodoross/internal/core/timing"
)

// Scheduler is a state machine that alternates work and break phases.
// Only the stopwatch of the current phase runs. It is not safe for
// concurrent use; callbacks run synchronously inside Update.
type Scheduler struct {
	config     model.SchedulerConfig
	state      State
	workTimer  timing.Stopwatch
	breakTimer timing.Stopwatch

	onStartBreak func()
	onEndBreak   func()
}

// New creates a scheduler in the configured initial phase.
func New(config model.SchedulerConfig) *Scheduler {
	scheduler := &Scheduler{
		config:     config,
		workTimer:  timing.NewStopwatch(),
		breakTimer: timing.NewStopwatch(),
	}
	if config.StartInBreak {
		scheduler.state = StateBreaking
		scheduler.workTimer.SetPaused(true)
	} else {
		scheduler.state = StateWorking
		scheduler.breakTimer.SetPaused(true)
	}
	return scheduler
}

// SetOnStartBreak registers the callback fired on Working -> Breaking.
// Passing nil removes it.
func (scheduler *Scheduler) SetOnStartBreak(callback func()) {
	scheduler.onStartBreak = callback
}

// SetOnEndBreak registers the callback fired on Breaking -> Working.
// Passing nil removes it.
func (scheduler *Scheduler) SetOnEndBreak(callback func()) {
	scheduler.onEndBreak = callback
}

// State returns the current phase.
func (scheduler *Scheduler) State() State {
	return scheduler.state
}

// Config returns the configured durations.
func (scheduler *Scheduler) Config() model.SchedulerConfig {
	return scheduler.config
}

// WorkElapsed returns the time accumulated by the work stopwatch.
func (scheduler *Scheduler) WorkElapsed() time.Duration {
	return scheduler.workTimer.Elapsed()
}

// BreakElapsed returns the time accumulated by the break stopwatch.
func (scheduler *Scheduler) BreakElapsed() time.Duration {
	return scheduler.breakTimer.Elapsed()
}

// WorkPaused reports whether the work stopwatch is frozen.
func (scheduler *Scheduler) WorkPaused() bool {
	return scheduler.workTimer.Paused()
}

// BreakPaused reports whether the break stopwatch is frozen.
func (scheduler *Scheduler) BreakPaused() bool {
	return scheduler.breakTimer.Paused()
}

// TimeBeforeStartBreak returns the time left in the work phase.
// It reports false when the work stopwatch is not running.
func (scheduler *Scheduler) TimeBeforeStartBreak() (time.Duration, bool) {
	if scheduler.workTimer.Paused() {
		return 0, false
	}
	return timing.Remaining(scheduler.config.WorkDuration, scheduler.workTimer.Elapsed()), true
}

// TimeBeforeEndBreak returns the time left in the break phase.
// It reports false when the break stopwatch is not running.
func (scheduler *Scheduler) TimeBeforeEndBreak() (time.Duration, bool) {
	if scheduler.breakTimer.Paused() {
		return 0, false
	}
	return timing.Remaining(scheduler.config.BreakDuration, scheduler.breakTimer.Elapsed()), true
}

// Remaining returns the time left in the current phase.
func (scheduler *Scheduler) Remaining() time.Duration {
	if scheduler.state == StateBreaking {
		remaining, _ := scheduler.TimeBeforeEndBreak()
		return remaining
	}
	remaining, _ := scheduler.TimeBeforeStartBreak()
	return remaining
}

// Progress returns the completed fraction of the current phase.
func (scheduler *Scheduler) Progress() float64 {
	total := scheduler.config.WorkDuration
	elapsed := scheduler.workTimer.Elapsed()
	if scheduler.state == StateBreaking {
		total = scheduler.config.BreakDuration
		elapsed = scheduler.breakTimer.Elapsed()
	}
	if total <= 0 {
		return 1
	}
	progress := float64(elapsed) / float64(total)
	if progress > 1 {
		return 1
	}
	return progress
}

// AdvanceTimer moves the current phase forward by the given amount without
// changing state. The transition, if due, happens on the next Update.
func (scheduler *Scheduler) AdvanceTimer(by time.Duration) {
	scheduler.activeTimer().Advance(by)
}

// SwitchTo forces a phase change. Callbacks are not invoked.
func (scheduler *Scheduler) SwitchTo(state State) {
	scheduler.state = state
	switch state {
	case StateBreaking:
		scheduler.workTimer.SetPaused(true)
		scheduler.breakTimer.Restart()
	default:
		scheduler.state = StateWorking
		scheduler.breakTimer.SetPaused(true)
		scheduler.workTimer.Restart()
	}
}

// Update advances the active stopwatch and performs a transition once it
// exceeds the phase duration.
func (scheduler *Scheduler) Update(world timing.World) (Event, bool) {
	switch scheduler.state {
	case StateBreaking:
		scheduler.breakTimer.Update(world)
		if scheduler.breakTimer.Elapsed() <= scheduler.config.BreakDuration {
			return Event{}, false
		}
		scheduler.breakTimer.SetPaused(true)
		if scheduler.onEndBreak != nil {
			scheduler.onEndBreak()
		}
		scheduler.workTimer.Restart()
		scheduler.state = StateWorking
		return Event{Type: EventEndBreak, From: StateBreaking, To: StateWorking, At: world.Now}, true
	default:
		scheduler.workTimer.Update(world)
		if scheduler.workTimer.Elapsed() <= scheduler.config.WorkDuration {
			return Event{}, false
		}
		scheduler.workTimer.SetPaused(true)
		if scheduler.onStartBreak != nil {
			scheduler.onStartBreak()
		}
		scheduler.breakTimer.Restart()
		scheduler.state = StateBreaking
		return Event{Type: EventStartBreak, From: StateWorking, To: StateBreaking, At: world.Now}, true
	}
}

func (scheduler *Scheduler) activeTimer() *timing.Stopwatch {
	if scheduler.state == StateBreaking {
		return &scheduler.breakTimer
	}
	return &scheduler.workTimer
}
