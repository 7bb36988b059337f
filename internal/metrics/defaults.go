package metrics

import "github.com/san-kum/bounce/internal/anim"

// Default returns a fresh instance of every built-in metric.
func Default() []anim.Metric {
	return []anim.Metric{
		NewReversals(),
		NewCoverage(),
		NewSpread(),
	}
}
