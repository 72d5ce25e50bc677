package settings

import (
	"errors"
	"fmt"
	"time"

	"pomodoross/internal/core/activity"
	"pomodoross/internal/core/model"
)

// Settings defines construction-time options for Pomodoro SS.
type Settings struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	TickInterval  time.Duration

	ActivityCapacity int
	Weights          model.WeightConfig

	BlockInput        bool
	IdleResetEnabled  bool
	IdleResetAfter    time.Duration
	IdleCheckInterval time.Duration
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		WorkDuration:      25 * time.Minute,
		BreakDuration:     5 * time.Minute,
		TickInterval:      100 * time.Millisecond,
		ActivityCapacity:  activity.DefaultCapacity,
		Weights:           activity.DefaultWeights(),
		BlockInput:        true,
		IdleResetEnabled:  true,
		IdleResetAfter:    5 * time.Minute,
		IdleCheckInterval: 5 * time.Second,
	}
}

// Validate reports settings the scheduler cannot run with.
func (settings Settings) Validate() error {
	var errs []error
	if settings.WorkDuration <= 0 {
		errs = append(errs, fmt.Errorf("work duration must be positive, got %s", settings.WorkDuration))
	}
	if settings.BreakDuration <= 0 {
		errs = append(errs, fmt.Errorf("break duration must be positive, got %s", settings.BreakDuration))
	}
	if settings.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be positive, got %s", settings.TickInterval))
	}
	if settings.ActivityCapacity <= 0 {
		errs = append(errs, fmt.Errorf("activity capacity must be positive, got %d", settings.ActivityCapacity))
	}
	if settings.IdleResetEnabled && settings.IdleResetAfter <= 0 {
		errs = append(errs, fmt.Errorf("idle reset delay must be positive, got %s", settings.IdleResetAfter))
	}
	if settings.IdleResetEnabled && settings.IdleCheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("idle check interval must be positive, got %s", settings.IdleCheckInterval))
	}
	if settings.Weights.MouseMoveDivisor < 0 {
		errs = append(errs, fmt.Errorf("mouse move divisor must not be negative, got %g", settings.Weights.MouseMoveDivisor))
	}
	return errors.Join(errs...)
}

// SchedulerConfig converts settings to the scheduler configuration.
func (settings Settings) SchedulerConfig() model.SchedulerConfig {
	return model.SchedulerConfig{
		WorkDuration:  settings.WorkDuration,
		BreakDuration: settings.BreakDuration,
	}
}

// ActivityConfig converts settings to the monitor configuration.
func (settings Settings) ActivityConfig() model.ActivityConfig {
	return model.ActivityConfig{
		Capacity: settings.ActivityCapacity,
		Weights:  settings.Weights,
	}
}

// LoopConfig converts settings to the main loop configuration.
func (settings Settings) LoopConfig() model.LoopConfig {
	return model.LoopConfig{
		TickInterval: settings.TickInterval,
		BlockInput:   settings.BlockInput,
		Idle: model.IdleConfig{
			ResetEnabled:  settings.IdleResetEnabled,
			ResetAfter:    settings.IdleResetAfter,
			CheckInterval: settings.IdleCheckInterval,
		},
	}
}
