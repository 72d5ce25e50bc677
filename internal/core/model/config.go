package model

import "time"

// SchedulerConfig defines the work/break cycle.
type SchedulerConfig struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	StartInBreak  bool
}

// WeightConfig maps raw input events to activity weights.
// A mouse move of N pixels weighs N / MouseMoveDivisor.
type WeightConfig struct {
	KeyPress         float64
	KeyJustPressed   float64
	MousePressed     float64
	MouseJustPressed float64
	MouseMoveDivisor float64
}

// ActivityConfig contains settings for the activity monitor.
type ActivityConfig struct {
	Capacity int
	Weights  WeightConfig
}

// IdleConfig controls the idle reset of the work cycle.
type IdleConfig struct {
	ResetEnabled  bool
	ResetAfter    time.Duration
	CheckInterval time.Duration
}

// LoopConfig contains runtime settings for the main loop.
type LoopConfig struct {
	TickInterval time.Duration
	BlockInput   bool
	Idle         IdleConfig
}
