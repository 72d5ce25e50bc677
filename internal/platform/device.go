package platform

import (
	"time"

	"pomodoross/internal/core/activity"
)

const (
	// SyntheticKey is the key name reported while the user is active.
	SyntheticKey = "input"

	defaultActiveWithin = 2 * time.Second
	defaultRefresh      = time.Second
)

// IdleDeviceSource derives per-tick device state from OS idle time.
// Raw keyboard and mouse polling needs privileges most desktops do not grant,
// so recent input is reported as one held key.
//
// Reading idle time can start a process, so the provider is asked at most
// once per refresh interval. Between reads the idle time is extrapolated
// from the last reading.
type IdleDeviceSource struct {
	provider     IdleProvider
	activeWithin time.Duration
	refresh      time.Duration
	now          func() time.Time

	lastIdle time.Duration
	lastRead time.Time
	haveRead bool
}

// NewDeviceSource reports input as held while idle time is below activeWithin.
// The provider is polled at most once per refresh; refresh must stay below
// activeWithin or continuous input shows up as gaps.
func NewDeviceSource(provider IdleProvider, activeWithin, refresh time.Duration) *IdleDeviceSource {
	if activeWithin <= 0 {
		activeWithin = defaultActiveWithin
	}
	if refresh <= 0 {
		refresh = defaultRefresh
	}
	if refresh >= activeWithin {
		refresh = activeWithin / 2
	}
	return &IdleDeviceSource{
		provider:     provider,
		activeWithin: activeWithin,
		refresh:      refresh,
		now:          time.Now,
	}
}

// SetNow injects the time source.
func (source *IdleDeviceSource) SetNow(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	source.now = now
	source.haveRead = false
}

// Snapshot returns the device state for the current tick.
func (source *IdleDeviceSource) Snapshot() (activity.Snapshot, error) {
	idle, err := source.IdleDuration()
	if err != nil {
		return activity.Snapshot{}, err
	}
	if idle < source.activeWithin {
		return activity.Snapshot{Keys: []string{SyntheticKey}}, nil
	}
	return activity.Snapshot{}, nil
}

// IdleDuration returns the cached idle time, reading the provider when the
// cached value is older than the refresh interval.
func (source *IdleDeviceSource) IdleDuration() (time.Duration, error) {
	current := source.now()
	sinceRead := current.Sub(source.lastRead)
	if source.haveRead && sinceRead >= 0 && sinceRead < source.refresh {
		return source.lastIdle + sinceRead, nil
	}

	idle, err := source.provider.IdleDuration()
	if err != nil {
		source.haveRead = false
		return 0, err
	}
	source.lastIdle = idle
	source.lastRead = current
	source.haveRead = true
	return idle, nil
}
