package curve

import (
	"fmt"
	"math"
)

const (
	DefaultXExtent   = 75.0
	DefaultYExtent   = 50.0
	DefaultCurvature = 1.0
)

// Point is one animated particle. Direction is always +1 or -1.
type Point struct {
	Index     float64
	Render    float64
	Direction float64
}

// Origin is the state every point starts a run in.
func Origin() Point {
	return Point{Index: 0, Render: 0, Direction: 1}
}

type Params struct {
	XExtent   float64
	YExtent   float64
	Curvature float64
}

func DefaultParams() Params {
	return Params{
		XExtent:   DefaultXExtent,
		YExtent:   DefaultYExtent,
		Curvature: DefaultCurvature,
	}
}

// ParamsFrom builds Params from either no values (defaults) or exactly
// three values: x extent, y extent and curvature constant.
func ParamsFrom(values ...float64) (Params, error) {
	switch len(values) {
	case 0:
		return DefaultParams(), nil
	case 3:
		return Params{XExtent: values[0], YExtent: values[1], Curvature: values[2]}, nil
	default:
		return Params{}, fmt.Errorf("%w: expected 3 values (x_extent, y_extent, curvature), got %d", ErrInvalidParams, len(values))
	}
}

func (p Params) Values() []float64 {
	return []float64{p.XExtent, p.YExtent, p.Curvature}
}

func (p Params) validate() error {
	if p.XExtent <= 0 || math.IsInf(p.XExtent, 0) || math.IsNaN(p.XExtent) {
		return fmt.Errorf("%w: x_extent must be positive, got %v", ErrInvalidParams, p.XExtent)
	}
	if p.YExtent <= 0 || math.IsInf(p.YExtent, 0) || math.IsNaN(p.YExtent) {
		return fmt.Errorf("%w: y_extent must be positive, got %v", ErrInvalidParams, p.YExtent)
	}
	return nil
}

// stride applies the boundary rule and moves the index one step, clamped to
// [0, XExtent]. The lower bound check runs last and wins at index 0.
func (p Params) stride(pt Point, step float64) (index, direction float64) {
	direction = pt.Direction
	if pt.Index >= p.XExtent {
		direction = -1
	}
	if pt.Index <= 0 {
		direction = 1
	}

	index = pt.Index + direction*step
	if index < 0 {
		index = 0
	}
	if index > p.XExtent {
		index = p.XExtent
	}
	return index, direction
}

// project maps a radius onto [0, 2*YExtent].
func (p Params) project(radius, direction, reversal float64) float64 {
	return (1 - direction*radius*reversal) * p.YExtent
}

// Shape is one curve family bound to its parameters and step size.
type Shape interface {
	Name() string
	Params() Params
	Step() float64
	// RenderExtent is the half-range the rasterizer scales against.
	RenderExtent() float64
	Advance(p Point, reversal float64) Point
}

func validateStep(step float64) error {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidParams, step)
	}
	return nil
}
