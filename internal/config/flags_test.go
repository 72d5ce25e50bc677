package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoross/internal/settings"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Options
		wantErr bool
	}{
		{
			name: "no flags",
			args: []string{},
			want: Options{},
		},
		{
			name: "durations",
			args: []string{"--work", "50m", "--break", "10m", "--tick", "250ms"},
			want: Options{Work: 50 * time.Minute, Break: 10 * time.Minute, Tick: 250 * time.Millisecond},
		},
		{
			name: "switches",
			args: []string{"--headless", "--no-block", "--no-idle-reset", "-c", "/tmp/p.yaml"},
			want: Options{Headless: true, NoBlock: true, NoIdleReset: true, Config: "/tmp/p.yaml"},
		},
		{
			name:    "invalid duration",
			args:    []string{"--work", "soon"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrHelp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse([]string{"--help"})

	require.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, err.Error(), "--work")
}

func TestApply(t *testing.T) {
	target := settings.Default()
	Options{Work: time.Hour, NoBlock: true}.Apply(&target)

	assert.Equal(t, time.Hour, target.WorkDuration)
	assert.Equal(t, settings.Default().BreakDuration, target.BreakDuration)
	assert.False(t, target.BlockInput)
	assert.True(t, target.IdleResetEnabled)
}
