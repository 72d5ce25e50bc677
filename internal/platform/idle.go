package platform

import "time"

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns a platform-specific idle provider.
// Providers that cannot measure idle time return app.ErrIdleUnsupported.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}
