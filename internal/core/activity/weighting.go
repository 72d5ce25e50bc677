package activity

import "pomodoross/internal/core/model"

// Weigher maps a raw event to its importance, independent of elapsed time.
type Weigher interface {
	Weight(event Event, amount int) float64
}

// WeigherFunc adapts a function to Weigher.
type WeigherFunc func(event Event, amount int) float64

// Weight calls the wrapped function.
func (fn WeigherFunc) Weight(event Event, amount int) float64 {
	return fn(event, amount)
}

// WeightTable is a fixed per-kind weighting scheme.
type WeightTable struct {
	config model.WeightConfig
}

// DefaultWeights weighs fresh presses far above held input.
func DefaultWeights() model.WeightConfig {
	return model.WeightConfig{
		KeyPress:         1,
		KeyJustPressed:   75,
		MousePressed:     1,
		MouseJustPressed: 75,
		MouseMoveDivisor: 10,
	}
}

// NewWeightTable creates a table from config.
func NewWeightTable(config model.WeightConfig) WeightTable {
	return WeightTable{config: config}
}

// Weight returns the per-kind multiplier times amount.
func (table WeightTable) Weight(event Event, amount int) float64 {
	count := float64(amount)
	switch event.Kind {
	case KeyPress:
		return table.config.KeyPress * count
	case KeyJustPressed:
		return table.config.KeyJustPressed * count
	case MousePressed:
		return table.config.MousePressed * count
	case MouseJustPressed:
		return table.config.MouseJustPressed * count
	case MouseMove:
		if table.config.MouseMoveDivisor <= 0 {
			return 0
		}
		return event.Distance / table.config.MouseMoveDivisor * count
	default:
		return 0
	}
}
