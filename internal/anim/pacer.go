package anim

import (
	"context"
	"time"
)

// Pacer blocks between frames.
type Pacer interface {
	Pace(ctx context.Context, d time.Duration) error
}

// SleepPacer sleeps for the full frame interval, returning early with the
// context error if ctx is canceled.
type SleepPacer struct{}

func (SleepPacer) Pace(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoPacer runs frames back to back.
type NoPacer struct{}

func (NoPacer) Pace(ctx context.Context, d time.Duration) error {
	return nil
}
