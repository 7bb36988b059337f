package metrics

import "github.com/san-kum/bounce/internal/anim"

// Spread is the mean number of distinct markers per frame. Points that share
// a column collapse into one marker, so a tight trail scores low.
type Spread struct {
	name    string
	sum     int
	samples int
}

func NewSpread() *Spread {
	return &Spread{
		name: "spread",
	}
}

func (s *Spread) Name() string {
	return s.name
}

func (s *Spread) Observe(f anim.Frame) {
	s.sum += len(f.Line.Columns())
	s.samples++
}

func (s *Spread) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.sum) / float64(s.samples)
}

func (s *Spread) Reset() {
	s.sum = 0
	s.samples = 0
}
