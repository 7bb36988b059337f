// Package render rasterizes point sets onto a single fixed-width text line.
package render

import (
	"math"

	"github.com/san-kum/bounce/internal/curve"
)

const (
	Blank  = ' '
	Marker = '*'
)

// Line is one rasterized frame. Its length is always the output width.
type Line []rune

func NewLine(width int) Line {
	l := make(Line, width)
	l.Clear()
	return l
}

func (l Line) Clear() {
	for i := range l {
		l[i] = Blank
	}
}

func (l Line) String() string {
	return string(l)
}

// Columns returns the indexes holding a marker.
func (l Line) Columns() []int {
	cols := make([]int, 0)
	for i, r := range l {
		if r == Marker {
			cols = append(cols, i)
		}
	}
	return cols
}

// Column maps a render position to a buffer column, clamped to
// [0, width-1].
func Column(render float64, width int, axis float64) int {
	scale := float64(width) / (2 * axis)
	// clamp before converting: huge positions would overflow int
	col := math.Floor(math.Floor(render) * scale)
	if col >= float64(width) {
		return width - 1
	}
	if col < 0 || math.IsNaN(col) {
		return 0
	}
	return int(col)
}

// Rasterize draws every point onto a fresh line of the given width, scaled
// so that [0, 2*axis] spans the line. Points sharing a column overwrite
// each other.
func Rasterize(points []curve.Point, width int, axis float64) Line {
	if width <= 0 {
		panic("render: width must be positive")
	}
	line := NewLine(width)
	for _, p := range points {
		line[Column(p.Render, width, axis)] = Marker
	}
	return line
}
