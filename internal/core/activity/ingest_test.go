package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoross/internal/core/timing"
)

func kindsOf(samples []Sample) []Kind {
	kinds := make([]Kind, 0, len(samples))
	for _, sample := range samples {
		kinds = append(kinds, sample.Event.Kind)
	}
	return kinds
}

func TestIngestFirstSnapshotOnlyRecordsHeldInput(t *testing.T) {
	monitor, _ := newTestMonitor(16, nil)

	monitor.Ingest(Snapshot{
		Mouse:   Point{X: 400, Y: 300},
		Buttons: []bool{true, false},
		Keys:    []string{"shift"},
	}, timing.World{Delta: time.Second})

	assert.Equal(t, []Kind{MousePressed, KeyPress}, kindsOf(monitor.Samples()))
}

func TestIngestDerivesAllCategories(t *testing.T) {
	monitor, _ := newTestMonitor(16, nil)
	world := timing.World{Delta: time.Second}

	monitor.Ingest(Snapshot{Mouse: Point{X: 0, Y: 0}, Buttons: []bool{false, false}}, world)
	require.Zero(t, monitor.Len())

	monitor.Ingest(Snapshot{
		Mouse:   Point{X: 30, Y: 40},
		Buttons: []bool{true, true},
		Keys:    []string{"a", "b"},
	}, world)

	samples := monitor.Samples()
	require.Equal(t, []Kind{MousePressed, MouseJustPressed, MouseMove, KeyPress, KeyJustPressed}, kindsOf(samples))
	assert.InDelta(t, 2.0, samples[0].Weight, 1e-9)
	assert.InDelta(t, 150.0, samples[1].Weight, 1e-9)
	assert.InDelta(t, 50.0, samples[2].Event.Distance, 1e-9)
	assert.InDelta(t, 5.0, samples[2].Weight, 1e-9)
	assert.InDelta(t, 2.0, samples[3].Weight, 1e-9)
	assert.InDelta(t, 150.0, samples[4].Weight, 1e-9)
}

func TestIngestHeldKeysAreNotNewPresses(t *testing.T) {
	monitor, _ := newTestMonitor(16, nil)
	world := timing.World{Delta: time.Second}

	monitor.Ingest(Snapshot{}, world)
	monitor.Ingest(Snapshot{Keys: []string{"a"}}, world)
	monitor.Ingest(Snapshot{Keys: []string{"a", "b"}}, world)

	assert.Equal(t, []Kind{KeyPress, KeyJustPressed, KeyPress, KeyJustPressed}, kindsOf(monitor.Samples()))
	last := monitor.Samples()[3]
	assert.InDelta(t, 75.0, last.Weight, 1e-9, "only b is new")
}

func TestIngestIdleTickRecordsNothingButUpdatesSnapshot(t *testing.T) {
	monitor, _ := newTestMonitor(16, nil)
	world := timing.World{Delta: time.Second}

	monitor.Ingest(Snapshot{Mouse: Point{X: 10, Y: 10}}, world)
	monitor.Ingest(Snapshot{Mouse: Point{X: 10, Y: 10}}, world)
	assert.Zero(t, monitor.Len())

	monitor.Ingest(Snapshot{Mouse: Point{X: 13, Y: 14}}, world)
	monitor.Ingest(Snapshot{Mouse: Point{X: 13, Y: 14}}, world)
	assert.Equal(t, []Kind{MouseMove}, kindsOf(monitor.Samples()))
}

func TestIngestButtonsComparedPairwise(t *testing.T) {
	monitor, _ := newTestMonitor(16, unitWeigher)
	world := timing.World{Delta: time.Second}

	monitor.Ingest(Snapshot{Buttons: []bool{false}}, world)
	monitor.Ingest(Snapshot{Buttons: []bool{true, true, true}}, world)

	samples := monitor.Samples()
	require.Equal(t, []Kind{MousePressed, MouseJustPressed}, kindsOf(samples))
	assert.InDelta(t, 3.0, samples[0].Weight, 1e-9)
	assert.InDelta(t, 1.0, samples[1].Weight, 1e-9)
}

func TestIngestZeroDeltaContributesZero(t *testing.T) {
	monitor, _ := newTestMonitor(16, nil)

	monitor.Ingest(Snapshot{Keys: []string{"a"}}, timing.World{})

	assert.Equal(t, 1, monitor.Len())
	assert.Zero(t, monitor.Total())
}
