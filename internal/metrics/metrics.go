package metrics

import "github.com/san-kum/animgen/internal/anim"

// Series is implemented by metrics that keep a per-frame value.
type Series interface {
	anim.Metric
	Series() []float64
}

// Default returns the metrics every render reports.
func Default() []anim.Metric {
	return []anim.Metric{
		NewBrightness(),
		NewBrightnessDrift(),
		NewMotion(),
		NewColorBudget(256),
	}
}
