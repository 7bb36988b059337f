package anim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/san-kum/bounce/internal/curve"
	"github.com/san-kum/bounce/internal/render"
)

// overshootFactor scales 2*YExtent into the tolerance used to decide the
// trailing point has reached either end of the render range.
const overshootFactor = 5e-7

type Option func(*Animator)

func WithOutput(w io.Writer) Option {
	return func(a *Animator) { a.output = w }
}

func WithPacer(p Pacer) Option {
	return func(a *Animator) { a.pacer = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Animator) { a.logger = l }
}

func WithMetric(m Metric) Option {
	return func(a *Animator) { a.metrics = append(a.metrics, m) }
}

func WithObserver(o Observer) Option {
	return func(a *Animator) { a.observers = append(a.observers, o) }
}

type Animator struct {
	shape     curve.Shape
	cfg       Config
	output    io.Writer
	pacer     Pacer
	logger    *slog.Logger
	metrics   []Metric
	observers []Observer

	points   []curve.Point
	reversal float64
	armed    bool
	frame    int
	state    State
	epsilon  float64
}

func New(shape curve.Shape, cfg Config, opts ...Option) (*Animator, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: shape is required", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Animator{
		shape:     shape,
		cfg:       cfg,
		output:    os.Stdout,
		pacer:     SleepPacer{},
		logger:    slog.New(slog.DiscardHandler),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		epsilon:   overshootFactor * 2 * shape.Params().YExtent,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Reset()

	return a, nil
}

// Reset puts every point back at the origin and clears the clock.
func (a *Animator) Reset() {
	a.points = make([]curve.Point, a.cfg.Points)
	for i := range a.points {
		a.points[i] = curve.Origin()
	}
	// The first frame sees the trailing point at render 0 and flips this to +1.
	a.reversal = -1
	a.armed = true
	a.frame = 0
	a.state = Running
	for _, m := range a.metrics {
		m.Reset()
	}
}

func (a *Animator) Config() Config     { return a.cfg }
func (a *Animator) Shape() curve.Shape { return a.shape }
func (a *Animator) State() State       { return a.state }
func (a *Animator) Reversal() float64  { return a.reversal }
func (a *Animator) FrameCount() int    { return a.frame }

func (a *Animator) Points() []curve.Point {
	out := make([]curve.Point, len(a.points))
	copy(out, a.points)
	return out
}

func (a *Animator) Elapsed() time.Duration {
	return a.cfg.elapsedAfter(a.frame)
}

// Done reports whether the duration budget has been spent. A run always
// draws at least one frame, so a zero budget still shows the start position.
func (a *Animator) Done() bool {
	if a.cfg.Unbounded() || a.frame == 0 {
		return false
	}
	return a.Elapsed() >= a.cfg.Budget()
}

// Step computes one frame: reversal detection, point advance and
// rasterization. It performs no I/O and does not pace.
func (a *Animator) Step() Frame {
	flipped := a.detectReversal()

	switch a.cfg.Mode {
	case ModeSync:
		next := make([]curve.Point, len(a.points))
		for i, p := range a.points {
			next[i] = a.shape.Advance(p, a.reversal)
		}
		a.points = next
	default:
		last := a.points[len(a.points)-1]
		next := make([]curve.Point, len(a.points))
		copy(next, a.points[1:])
		next[len(next)-1] = a.shape.Advance(last, a.reversal)
		a.points = next
	}
	a.frame++

	f := Frame{
		Number:   a.frame,
		Points:   a.Points(),
		Reversal: a.reversal,
		Flipped:  flipped,
		Line:     render.Rasterize(a.points, a.cfg.Width, a.shape.RenderExtent()),
		Elapsed:  a.Elapsed(),
	}

	for _, m := range a.metrics {
		m.Observe(f)
	}
	for _, o := range a.observers {
		o.OnFrame(f)
	}
	return f
}

// detectReversal flips the reversal sign when the trailing point sits at
// either end of the render range. After a flip, detection stays disarmed
// until the trailing point has left the tolerance band.
func (a *Animator) detectReversal() bool {
	last := a.points[len(a.points)-1].Render
	top := 2 * a.shape.Params().YExtent
	atBound := last <= a.epsilon || last >= top-a.epsilon

	if !a.armed {
		if !atBound {
			a.armed = true
		}
		return false
	}
	if !atBound {
		return false
	}

	a.reversal *= -1
	a.armed = false
	a.logger.Debug("reversal", "frame", a.frame+1, "sign", a.reversal, "render", last)
	return true
}

// Run drives frames until the duration budget is spent or ctx is canceled.
// Each frame is written to the output before pacing. A write failure stops
// the run with ErrOutput.
func (a *Animator) Run(ctx context.Context) (*Result, error) {
	out := render.NewWriter(a.output, a.cfg.Redraw)
	interval := a.cfg.FrameInterval()

	a.logger.Debug("animation started",
		"shape", a.shape.Name(),
		"points", a.cfg.Points,
		"fps", a.cfg.FrameRate,
		"duration", a.cfg.Duration,
		"width", a.cfg.Width,
		"step", a.shape.Step(),
		"mode", string(a.cfg.Mode),
	)

	for {
		if a.Done() {
			break
		}

		select {
		case <-ctx.Done():
			a.state = Stopped
			return a.result(), ctx.Err()
		default:
		}

		f := a.Step()
		if err := out.WriteLine(f.Line); err != nil {
			a.state = Stopped
			return a.result(), fmt.Errorf("%w: %w", ErrOutput, err)
		}

		if err := a.pacer.Pace(ctx, interval); err != nil {
			a.state = Stopped
			return a.result(), err
		}
	}

	a.state = Stopped
	a.logger.Debug("animation stopped", "frames", a.frame, "elapsed", a.Elapsed())
	return a.result(), nil
}

func (a *Animator) result() *Result {
	r := &Result{
		Frames:  a.frame,
		Elapsed: a.Elapsed(),
		State:   a.state,
		Metrics: make(map[string]float64),
	}
	for _, m := range a.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
	return r
}
