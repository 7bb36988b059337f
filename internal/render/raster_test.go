package render

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/san-kum/bounce/internal/curve"
)

func TestRasterize_HugeCurvature(t *testing.T) {
	shape, err := curve.New("ellipse", 2, 75, 50, 1e40)
	if err != nil {
		t.Fatal(err)
	}
	p := shape.Advance(curve.Point{Index: 2, Direction: -1}, 1)
	if p.Render < 1e21 {
		t.Fatalf("expected a huge render position, got %v", p.Render)
	}

	line := Rasterize([]curve.Point{p}, 100, shape.RenderExtent())
	if cols := line.Columns(); len(cols) != 1 || cols[0] != 99 {
		t.Errorf("expected marker in the last column, got %v", cols)
	}
}

func TestColumn(t *testing.T) {
	tests := []struct {
		name   string
		render float64
		width  int
		axis   float64
		want   int
	}{
		{"origin", 0, 100, 50, 0},
		{"middle", 50, 100, 50, 50},
		{"fraction floored", 49.9, 100, 50, 49},
		{"top clamps to last column", 100, 100, 50, 99},
		{"overshoot clamps", 130, 100, 50, 99},
		{"narrow width clamps to its own last column", 100, 40, 50, 39},
		{"negative clamps to zero", -3.5, 100, 50, 0},
		{"parabola axis", 100, 150, 75, 100},
		{"beyond int range clamps to last column", 5e21, 100, 50, 99},
		{"far negative clamps to zero", -5e21, 100, 50, 0},
		{"infinity clamps to last column", math.Inf(1), 100, 50, 99},
		{"NaN lands on column zero", math.NaN(), 100, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Column(tt.render, tt.width, tt.axis); got != tt.want {
				t.Errorf("Column(%v, %d, %v) = %d, want %d", tt.render, tt.width, tt.axis, got, tt.want)
			}
		})
	}
}

func TestRasterize(t *testing.T) {
	points := []curve.Point{
		{Render: 0},
		{Render: 25.7},
		{Render: 100},
	}

	line := Rasterize(points, 100, 50)
	if len(line) != 100 {
		t.Fatalf("expected 100 columns, got %d", len(line))
	}

	cols := line.Columns()
	want := []int{0, 25, 99}
	if len(cols) != len(want) {
		t.Fatalf("expected columns %v, got %v", want, cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("expected columns %v, got %v", want, cols)
			break
		}
	}
}

func TestRasterize_SharedColumn(t *testing.T) {
	points := []curve.Point{{Render: 10.2}, {Render: 10.9}}
	line := Rasterize(points, 100, 50)
	if n := len(line.Columns()); n != 1 {
		t.Errorf("expected a single marker, got %d", n)
	}
}

func TestRasterize_NeverOutOfBounds(t *testing.T) {
	for width := 1; width <= 64; width++ {
		points := make([]curve.Point, 0, 40)
		for r := -10.0; r <= 120; r += 3.3 {
			points = append(points, curve.Point{Render: r})
		}
		line := Rasterize(points, width, 50)
		if utf8.RuneCountInString(line.String()) != width {
			t.Fatalf("width %d: line has %d runes", width, utf8.RuneCountInString(line.String()))
		}
	}
}

func TestWriter(t *testing.T) {
	line := Rasterize([]curve.Point{{Render: 50}}, 10, 50)

	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	if err := w.WriteLine(line); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteLine(line); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "     *    \n     *    \n" {
		t.Errorf("unexpected output %q", got)
	}

	buf.Reset()
	w = NewWriter(&buf, true)
	if err := w.WriteLine(line); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "     *    \r" {
		t.Errorf("unexpected redraw output %q", got)
	}
}

type brokenWriter struct{}

var errBroken = errors.New("broken pipe")

func (brokenWriter) Write(p []byte) (int, error) { return 0, errBroken }

func TestWriter_Error(t *testing.T) {
	w := NewWriter(brokenWriter{}, false)
	err := w.WriteLine(NewLine(5))
	if !errors.Is(err, errBroken) {
		t.Errorf("expected write error, got %v", err)
	}
}
