package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomodoross/internal/core/model"
)

func TestWeightTable(t *testing.T) {
	table := NewWeightTable(DefaultWeights())

	tests := []struct {
		name   string
		event  Event
		amount int
		want   float64
	}{
		{name: "held key", event: Event{Kind: KeyPress}, amount: 3, want: 3},
		{name: "new key", event: Event{Kind: KeyJustPressed}, amount: 2, want: 150},
		{name: "held button", event: Event{Kind: MousePressed}, amount: 1, want: 1},
		{name: "new button", event: Event{Kind: MouseJustPressed}, amount: 1, want: 75},
		{name: "mouse move", event: Event{Kind: MouseMove, Distance: 120}, amount: 1, want: 12},
		{name: "unknown kind", event: Event{Kind: Kind(99)}, amount: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, table.Weight(tt.event, tt.amount), 1e-9)
		})
	}
}

func TestWeightTableWithoutDivisorIgnoresMouseMove(t *testing.T) {
	table := NewWeightTable(model.WeightConfig{KeyPress: 1})
	assert.Zero(t, table.Weight(Event{Kind: MouseMove, Distance: 50}, 1))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "key_just_pressed", KeyJustPressed.String())
	assert.Equal(t, "mouse_move", MouseMove.String())
	assert.Equal(t, "unknown", Kind(-1).String())
}
