package metrics

import "github.com/san-kum/bounce/internal/anim"

// Reversals counts how many times the trailing point switched between the
// two halves of the curve.
type Reversals struct {
	name  string
	count int
}

func NewReversals() *Reversals {
	return &Reversals{
		name: "reversals",
	}
}

func (r *Reversals) Name() string {
	return r.name
}

func (r *Reversals) Observe(f anim.Frame) {
	if f.Flipped {
		r.count++
	}
}

func (r *Reversals) Value() float64 {
	return float64(r.count)
}

func (r *Reversals) Reset() {
	r.count = 0
}
