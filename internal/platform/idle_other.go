//go:build !linux && !darwin && !windows

package platform

import (
	"time"

	"pomodoross/internal/app"
)

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return idleProvider{}
}

func (idleProvider) IdleDuration() (time.Duration, error) {
	return 0, app.ErrIdleUnsupported
}
