package curve

import (
	"fmt"
	"math"
)

// Ellipse moves points along the upper and lower halves of an ellipse.
type Ellipse struct {
	params Params
	step   float64
}

// NewEllipse rejects a curvature below 1: the clamped index reaches
// ratio 1, where Curvature-1 would be a negative radicand.
func NewEllipse(params Params, step float64) (*Ellipse, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if params.Curvature < 1 || math.IsInf(params.Curvature, 0) || math.IsNaN(params.Curvature) {
		return nil, fmt.Errorf("%w: ellipse curvature must be at least 1, got %v", ErrInvalidParams, params.Curvature)
	}
	if err := validateStep(step); err != nil {
		return nil, err
	}
	return &Ellipse{params: params, step: step}, nil
}

func (e *Ellipse) Name() string          { return "ellipse" }
func (e *Ellipse) Params() Params        { return e.params }
func (e *Ellipse) Step() float64         { return e.step }
func (e *Ellipse) RenderExtent() float64 { return e.params.YExtent }

func (e *Ellipse) Advance(p Point, reversal float64) Point {
	index, direction := e.params.stride(p, e.step)
	ratio := index / e.params.XExtent
	radius := math.Sqrt(e.params.Curvature - ratio*ratio)
	return Point{
		Index:     index,
		Render:    e.params.project(radius, direction, reversal),
		Direction: direction,
	}
}
