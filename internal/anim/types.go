package anim

import (
	"time"

	"github.com/san-kum/bounce/internal/curve"
	"github.com/san-kum/bounce/internal/render"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Frame is the outcome of one loop iteration.
type Frame struct {
	Number   int
	Points   []curve.Point
	Reversal float64
	Flipped  bool
	Line     render.Line
	// Elapsed is the animation clock after this frame.
	Elapsed time.Duration
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Result struct {
	Frames  int
	Elapsed time.Duration
	State   State
	Metrics map[string]float64
}
