package curve

import (
	"fmt"
	"math"
)

// Parabola moves points along a pair of mirrored parabolic arcs. Frames are
// scaled against the x extent, so the arc spans YExtent/XExtent of the line.
type Parabola struct {
	params Params
	step   float64
}

// NewParabola rejects a curvature below 1: the arc would then never reach
// either end of the render range and the reversal sign could not flip.
func NewParabola(params Params, step float64) (*Parabola, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if params.Curvature < 1 || math.IsInf(params.Curvature, 0) || math.IsNaN(params.Curvature) {
		return nil, fmt.Errorf("%w: parabola curvature must be at least 1, got %v", ErrInvalidParams, params.Curvature)
	}
	if err := validateStep(step); err != nil {
		return nil, err
	}
	return &Parabola{params: params, step: step}, nil
}

func (p *Parabola) Name() string          { return "parabola" }
func (p *Parabola) Params() Params        { return p.params }
func (p *Parabola) Step() float64         { return p.step }
func (p *Parabola) RenderExtent() float64 { return p.params.XExtent }

func (p *Parabola) Advance(pt Point, reversal float64) Point {
	index, direction := p.params.stride(pt, p.step)
	ratio := index / p.params.XExtent
	radius := p.params.Curvature - ratio*ratio
	return Point{
		Index:     index,
		Render:    p.params.project(radius, direction, reversal),
		Direction: direction,
	}
}
