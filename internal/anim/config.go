package anim

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultPoints     = 4
	DefaultFrameRate  = 10
	DefaultDuration   = 100.0
	DefaultWidth      = 100
	DefaultResolution = 50

	// Forever is the duration sentinel for a run without a time limit.
	// Any negative duration behaves the same.
	Forever = -1.0

	maxDurationSeconds = float64(math.MaxInt64 / int64(time.Second))
)

// Mode selects how the point sequence advances each frame.
type Mode string

const (
	// ModeTrail advances only the newest point and shifts the rest left,
	// so the sequence holds the last Points positions as a trail.
	ModeTrail Mode = "trail"
	// ModeSync advances every point independently.
	ModeSync Mode = "sync"
)

func Modes() []Mode {
	return []Mode{ModeTrail, ModeSync}
}

type Config struct {
	Points     int
	FrameRate  int
	Duration   float64
	Width      int
	Resolution int
	Mode       Mode
	Redraw     bool
}

func DefaultConfig() Config {
	return Config{
		Points:     DefaultPoints,
		FrameRate:  DefaultFrameRate,
		Duration:   DefaultDuration,
		Width:      DefaultWidth,
		Resolution: DefaultResolution,
		Mode:       ModeTrail,
	}
}

func (c Config) Validate() error {
	if c.Points < 1 {
		return fmt.Errorf("%w: points must be at least 1, got %d", ErrInvalidConfig, c.Points)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate must be positive, got %d", ErrInvalidConfig, c.FrameRate)
	}
	if math.IsNaN(c.Duration) || c.Duration > maxDurationSeconds {
		return fmt.Errorf("%w: duration must be at most %.0f seconds, got %v", ErrInvalidConfig, maxDurationSeconds, c.Duration)
	}
	if c.Width < 1 {
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Resolution < 1 {
		return fmt.Errorf("%w: resolution must be at least 1, got %d", ErrInvalidConfig, c.Resolution)
	}
	if c.Resolution > c.Width {
		return fmt.Errorf("%w: resolution %d exceeds width %d", ErrInvalidConfig, c.Resolution, c.Width)
	}
	switch c.Mode {
	case ModeTrail, ModeSync:
	default:
		return fmt.Errorf("%w: unknown mode %q (available: %v)", ErrInvalidConfig, c.Mode, Modes())
	}
	return nil
}

// Step is the index distance a point travels per frame.
func (c Config) Step() float64 {
	return float64(c.Width) / float64(c.Resolution)
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func (c Config) Unbounded() bool {
	return c.Duration < 0
}

// Budget is the run length. It is meaningless when Unbounded.
func (c Config) Budget() time.Duration {
	return time.Duration(math.Round(c.Duration * float64(time.Second)))
}

// elapsedAfter derives the clock from the frame count so that no rounding
// accumulates across frames.
func (c Config) elapsedAfter(frames int) time.Duration {
	return time.Duration(frames) * time.Second / time.Duration(c.FrameRate)
}
