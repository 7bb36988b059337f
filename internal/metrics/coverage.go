package metrics

import "github.com/san-kum/bounce/internal/anim"

// Coverage is the fraction of output columns that held a marker in at least
// one frame.
type Coverage struct {
	name    string
	visited map[int]struct{}
	width   int
}

func NewCoverage() *Coverage {
	return &Coverage{
		name:    "coverage",
		visited: make(map[int]struct{}),
	}
}

func (c *Coverage) Name() string {
	return c.name
}

func (c *Coverage) Observe(f anim.Frame) {
	c.width = len(f.Line)
	for _, col := range f.Line.Columns() {
		c.visited[col] = struct{}{}
	}
}

func (c *Coverage) Value() float64 {
	if c.width == 0 {
		return 0
	}
	return float64(len(c.visited)) / float64(c.width)
}

func (c *Coverage) Reset() {
	c.visited = make(map[int]struct{})
	c.width = 0
}
