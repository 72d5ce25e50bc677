package app

import (
	"errors"
	"log"
	"time"

	"pomodoross/internal/core/activity"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// Mode selects which tray menu is shown.
type Mode string

const (
	ModeNormal     Mode = "normal"
	ModeInBreak    Mode = "in_break"
	ModeRestricted Mode = "restricted"
)

// Effects applies side effects requested by the loop.
type Effects interface {
	BlockInput(block bool) error
	Notify(summary, body string) error
	SetMode(mode Mode)
	SetStatus(status string)
}

// DeviceSource returns the device state once per tick.
type DeviceSource interface {
	Snapshot() (activity.Snapshot, error)
}

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// LogEffects writes effects to the standard logger. Used in headless mode.
type LogEffects struct{}

// BlockInput logs the request.
func (LogEffects) BlockInput(block bool) error {
	log.Printf("effects: block input: %t", block)
	return nil
}

// Notify logs the notification.
func (LogEffects) Notify(summary, body string) error {
	log.Printf("effects: notify: %s: %s", summary, body)
	return nil
}

// SetMode logs the tray mode.
func (LogEffects) SetMode(mode Mode) {
	log.Printf("effects: mode: %s", mode)
}

// SetStatus is a no-op; status changes every second.
func (LogEffects) SetStatus(string) {}
