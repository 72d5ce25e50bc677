package platform

import (
	"bufio"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"pomodoross/internal/app"
)

type idleProvider struct {
	ioregPath string
}

func newIdleProvider() IdleProvider {
	path, err := exec.LookPath("ioreg")
	if err != nil {
		return &idleProvider{}
	}
	return &idleProvider{ioregPath: path}
}

func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	if provider.ioregPath == "" {
		return 0, app.ErrIdleUnsupported
	}
	output, err := exec.Command(provider.ioregPath, "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0, fmt.Errorf("ioreg: %w", err)
	}
	return parseHIDIdleTime(string(output))
}

// parseHIDIdleTime reads the HIDIdleTime property, reported in nanoseconds.
func parseHIDIdleTime(output string) (time.Duration, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, `"HIDIdleTime"`) {
			continue
		}
		_, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		idleNanos, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse HIDIdleTime: %w", err)
		}
		return time.Duration(idleNanos), nil
	}
	return 0, app.ErrIdleUnsupported
}
