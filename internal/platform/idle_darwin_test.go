package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoross/internal/app"
)

func TestParseHIDIdleTime(t *testing.T) {
	output := `+-o IOHIDSystem  <class IOHIDSystem, id 0x100000477>
    {
      "HIDIdleTime" = 2500000000
      "HIDParameters" = {}
    }`

	idle, err := parseHIDIdleTime(output)
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, idle)

	_, err = parseHIDIdleTime("no properties")
	assert.ErrorIs(t, err, app.ErrIdleUnsupported)
}
