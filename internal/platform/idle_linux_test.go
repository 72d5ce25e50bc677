package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoross/internal/app"
)

func TestParseIdleMillis(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    time.Duration
		wantErr bool
	}{
		{name: "plain", output: "1500\n", want: 1500 * time.Millisecond},
		{name: "negative clamps", output: "-4", want: 0},
		{name: "garbage", output: "idle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIdleMillis(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnsupportedProvider(t *testing.T) {
	_, err := unsupportedIdleProvider{}.IdleDuration()
	assert.ErrorIs(t, err, app.ErrIdleUnsupported)
}
