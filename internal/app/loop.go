package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pomodoross/internal/core/activity"
	"pomodoross/internal/core/breaker"
	"pomodoross/internal/core/model"
	"pomodoross/internal/core/timing"
)

const (
	commandBuffer     = 8
	breakStateBuffer  = 2
	defaultTick       = 100 * time.Millisecond
	defaultIdleReset  = 5 * time.Minute
	defaultIdleChecks = 5 * time.Second
)

// Loop owns the clock, the activity monitor and the scheduler and drives
// them one tick at a time. External producers talk to it only through
// bounded channels.
type Loop struct {
	config    model.LoopConfig
	clock     *timing.Clock
	monitor   *activity.Monitor
	scheduler *breaker.Scheduler
	effects   Effects

	devices       DeviceSource
	idleChecker   IdleChecker
	lastIdleCheck time.Time

	commands    chan Command
	breakStates chan bool

	blocked bool
	status  string
}

// New wires the loop and registers the scheduler callbacks.
func New(config model.LoopConfig, clock *timing.Clock, monitor *activity.Monitor, scheduler *breaker.Scheduler, effects Effects) *Loop {
	if config.TickInterval <= 0 {
		config.TickInterval = defaultTick
	}
	if config.Idle.ResetAfter <= 0 {
		config.Idle.ResetAfter = defaultIdleReset
	}
	if config.Idle.CheckInterval <= 0 {
		config.Idle.CheckInterval = defaultIdleChecks
	}
	if effects == nil {
		effects = LogEffects{}
	}

	loop := &Loop{
		config:      config,
		clock:       clock,
		monitor:     monitor,
		scheduler:   scheduler,
		effects:     effects,
		commands:    make(chan Command, commandBuffer),
		breakStates: make(chan bool, breakStateBuffer),
	}
	scheduler.SetOnStartBreak(func() {
		TrySend(loop.breakStates, true)
	})
	scheduler.SetOnEndBreak(func() {
		TrySend(loop.breakStates, false)
	})
	return loop
}

// SetEffects replaces the effects sink. Call before Run.
func (loop *Loop) SetEffects(effects Effects) {
	if effects == nil {
		effects = LogEffects{}
	}
	loop.effects = effects
}

// SetDeviceSource injects the per-tick device state provider.
func (loop *Loop) SetDeviceSource(source DeviceSource) {
	loop.devices = source
}

// SetIdleChecker injects an OS idle checker.
func (loop *Loop) SetIdleChecker(checker IdleChecker) {
	loop.idleChecker = checker
}

// Commands returns the channel tray handlers send commands into.
// Use TrySend; a full channel drops the command.
func (loop *Loop) Commands() chan<- Command {
	return loop.commands
}

// Scheduler returns the owned scheduler.
func (loop *Loop) Scheduler() *breaker.Scheduler {
	return loop.scheduler
}

// Monitor returns the owned activity monitor.
func (loop *Loop) Monitor() *activity.Monitor {
	return loop.monitor
}

// Run ticks until a quit command, a collaborator error or ctx cancellation.
// The current tick always completes before Run returns.
func (loop *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(loop.config.TickInterval)
	defer ticker.Stop()
	defer loop.release()

	for {
		stop, err := loop.Step()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Step runs a single tick. It reports whether the loop should stop.
func (loop *Loop) Step() (bool, error) {
	world := loop.clock.Tick()

	if loop.devices != nil {
		snapshot, err := loop.devices.Snapshot()
		if err != nil {
			return true, fmt.Errorf("read device state: %w", err)
		}
		loop.monitor.Ingest(snapshot, world)
	}

	if event, changed := loop.scheduler.Update(world); changed {
		log.Printf("scheduler: %s -> %s", event.From, event.To)
	}

	inBreak, received, err := tryReceive(loop.breakStates)
	if err != nil {
		return true, fmt.Errorf("poll break state: %w", err)
	}
	if received {
		if err := loop.applyBreakState(inBreak); err != nil {
			return true, err
		}
	}

	stop := false
	command, received, err := tryReceive(loop.commands)
	if err != nil {
		return true, fmt.Errorf("poll commands: %w", err)
	}
	if received {
		stop, err = loop.handleCommand(command)
		if err != nil {
			return true, err
		}
	}

	loop.checkIdle(world)
	loop.refreshStatus()
	return stop, nil
}

// Status describes the current phase for tray and overlay labels.
func (loop *Loop) Status() string {
	if loop.scheduler.State() == breaker.StateBreaking {
		return "break ends in " + timing.FormatRemaining(loop.scheduler.Remaining())
	}
	return "next break in " + timing.FormatRemaining(loop.scheduler.Remaining())
}

func (loop *Loop) handleCommand(command Command) (bool, error) {
	switch command.Kind {
	case CommandQuit:
		log.Printf("loop: quit requested")
		return true, nil
	case CommandRestartWork:
		loop.scheduler.SwitchTo(breaker.StateWorking)
		if err := loop.unblock(); err != nil {
			return true, err
		}
		loop.effects.SetMode(ModeNormal)
	case CommandSkipWork:
		loop.scheduler.AdvanceTimer(command.By)
	default:
		log.Printf("loop: ignoring unknown command %d", command.Kind)
	}
	return false, nil
}

func (loop *Loop) applyBreakState(inBreak bool) error {
	config := loop.scheduler.Config()
	if inBreak {
		mode := ModeInBreak
		if loop.config.BlockInput {
			if err := loop.effects.BlockInput(true); err != nil {
				return fmt.Errorf("block input: %w", err)
			}
			loop.blocked = true
			mode = ModeRestricted
		}
		loop.effects.SetMode(mode)
		body := fmt.Sprintf("Step away for %s.", timing.FormatRemaining(config.BreakDuration))
		if err := loop.effects.Notify("Break time", body); err != nil {
			return fmt.Errorf("notify break start: %w", err)
		}
		return nil
	}

	if err := loop.unblock(); err != nil {
		return err
	}
	loop.effects.SetMode(ModeNormal)
	body := fmt.Sprintf("Next break in %s.", timing.FormatRemaining(config.WorkDuration))
	if err := loop.effects.Notify("Back to work", body); err != nil {
		return fmt.Errorf("notify break end: %w", err)
	}
	return nil
}

func (loop *Loop) checkIdle(world timing.World) {
	if !loop.config.Idle.ResetEnabled || loop.scheduler.State() != breaker.StateWorking {
		return
	}
	resetAfter := loop.config.Idle.ResetAfter

	if loop.devices != nil && world.Now.Sub(loop.monitor.TimeStart()) >= resetAfter {
		if _, count := loop.monitor.ActivityInWindow(resetAfter); count == 0 {
			loop.resetForIdle("no input activity")
			return
		}
	}

	if loop.idleChecker == nil {
		return
	}
	if !loop.lastIdleCheck.IsZero() && world.Now.Sub(loop.lastIdleCheck) < loop.config.Idle.CheckInterval {
		return
	}
	loop.lastIdleCheck = world.Now

	idleDuration, err := loop.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			log.Printf("idle: %v; disabling system idle checks", err)
			loop.idleChecker = nil
			return
		}
		log.Printf("idle: %v", err)
		return
	}
	if idleDuration >= resetAfter {
		loop.resetForIdle("system idle")
	}
}

func (loop *Loop) resetForIdle(reason string) {
	log.Printf("idle: restarting work cycle: %s", reason)
	loop.scheduler.SwitchTo(breaker.StateWorking)
	loop.monitor.Clear()
}

func (loop *Loop) refreshStatus() {
	status := loop.Status()
	if status == loop.status {
		return
	}
	loop.status = status
	loop.effects.SetStatus(status)
}

func (loop *Loop) unblock() error {
	if !loop.blocked {
		return nil
	}
	if err := loop.effects.BlockInput(false); err != nil {
		return fmt.Errorf("unblock input: %w", err)
	}
	loop.blocked = false
	return nil
}

func (loop *Loop) release() {
	if err := loop.unblock(); err != nil {
		log.Printf("loop: %v", err)
	}
}
