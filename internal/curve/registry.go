package curve

import (
	"fmt"
	"sort"
)

type factory func(params Params, step float64) (Shape, error)

var families = map[string]factory{
	"ellipse": func(params Params, step float64) (Shape, error) {
		return NewEllipse(params, step)
	},
	"parabola": func(params Params, step float64) (Shape, error) {
		return NewParabola(params, step)
	},
}

// New constructs the named family. values is either empty (default
// parameters) or exactly x extent, y extent and curvature.
func New(family string, step float64, values ...float64) (Shape, error) {
	fn, ok := families[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownFamily, family, Families())
	}
	params, err := ParamsFrom(values...)
	if err != nil {
		return nil, err
	}
	return fn(params, step)
}

// Families returns the registered family names in sorted order.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
