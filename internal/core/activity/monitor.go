package activity

import "time"

// DefaultCapacity is the ring size used when none is configured.
const DefaultCapacity = 4096

// Monitor keeps a bounded, time-ordered history of weighted input samples.
// It is not safe for concurrent use; the main loop owns it.
type Monitor struct {
	samples   []Sample
	head      int
	size      int
	total     float64
	timeStart time.Time
	weigher   Weigher
	now       func() time.Time

	primed               bool
	previousMouse        Point
	previousKeys         map[string]struct{}
	previousMouseButtons []bool
}

// New creates a monitor with a fixed ring capacity.
func New(capacity int, weigher Weigher) *Monitor {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if weigher == nil {
		weigher = NewWeightTable(DefaultWeights())
	}
	monitor := &Monitor{
		samples:      make([]Sample, capacity),
		weigher:      weigher,
		now:          time.Now,
		previousKeys: map[string]struct{}{},
	}
	monitor.timeStart = monitor.now()
	return monitor
}

// SetNow injects the time source.
func (monitor *Monitor) SetNow(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	monitor.now = now
	monitor.timeStart = now()
}

// SetWeigher replaces the weighting strategy.
func (monitor *Monitor) SetWeigher(weigher Weigher) {
	if weigher == nil {
		return
	}
	monitor.weigher = weigher
}

// Total returns the sum of every weight recorded since the last Clear,
// including samples already evicted from the ring.
func (monitor *Monitor) Total() float64 {
	return monitor.total
}

// Len returns the number of stored samples.
func (monitor *Monitor) Len() int {
	return monitor.size
}

// Cap returns the ring capacity.
func (monitor *Monitor) Cap() int {
	return len(monitor.samples)
}

// TimeStart returns when recording started or was last cleared.
func (monitor *Monitor) TimeStart() time.Time {
	return monitor.timeStart
}

// LastActive returns the time of the newest sample.
func (monitor *Monitor) LastActive() (time.Time, bool) {
	if monitor.size == 0 {
		return time.Time{}, false
	}
	return monitor.at(monitor.size - 1).ObservedAt, true
}

// Samples returns a copy of the ring, oldest first.
func (monitor *Monitor) Samples() []Sample {
	result := make([]Sample, monitor.size)
	for i := range result {
		result[i] = monitor.at(i)
	}
	return result
}

// Record weighs an event, scales it by delta and appends it, evicting the
// oldest sample when the ring is full.
func (monitor *Monitor) Record(event Event, amount int, delta time.Duration) {
	weight := monitor.weigher.Weight(event, amount) * delta.Seconds()

	observedAt := monitor.now()
	if last, ok := monitor.LastActive(); ok && observedAt.Before(last) {
		observedAt = last
	}

	sample := Sample{Event: event, ObservedAt: observedAt, Weight: weight}
	capacity := len(monitor.samples)
	if monitor.size == capacity {
		monitor.samples[monitor.head] = sample
		monitor.head = (monitor.head + 1) % capacity
	} else {
		monitor.samples[(monitor.head+monitor.size)%capacity] = sample
		monitor.size++
	}
	monitor.total += weight
}

// ActivityInWindow sums the samples recorded within the last duration.
func (monitor *Monitor) ActivityInWindow(duration time.Duration) (float64, int) {
	return monitor.ActivityAfter(monitor.now().Add(-duration))
}

// ActivityAfter sums the samples following the newest one observed strictly
// before after. When no sample is older than after, all samples count.
func (monitor *Monitor) ActivityAfter(after time.Time) (float64, int) {
	if monitor.size == 0 {
		return 0, 0
	}

	first := 0
	for i := monitor.size - 1; i >= 0; i-- {
		if monitor.at(i).ObservedAt.Before(after) {
			first = i + 1
			break
		}
	}

	var sum float64
	for i := first; i < monitor.size; i++ {
		sum += monitor.at(i).Weight
	}
	return sum, monitor.size - first
}

// Clear drops all samples and the running total. The device snapshot is kept.
func (monitor *Monitor) Clear() {
	for i := range monitor.samples {
		monitor.samples[i] = Sample{}
	}
	monitor.head = 0
	monitor.size = 0
	monitor.total = 0
	monitor.timeStart = monitor.now()
}

func (monitor *Monitor) at(index int) Sample {
	return monitor.samples[(monitor.head+index)%len(monitor.samples)]
}
