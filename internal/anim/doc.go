// Package anim runs the frame loop that moves points along a curve and
// prints one rasterized line per frame.
//
// The package defines:
//
//   - [Config]: validated animation options (rate, points, duration, width)
//   - [Animator]: the Running/Stopped state machine
//   - [Pacer]: the blocking delay between frames
//   - [Metric], [Observer]: hooks notified once per frame
//
// # Example
//
//	cfg := anim.DefaultConfig()
//	shape, _ := curve.New("ellipse", cfg.Step())
//	a, _ := anim.New(shape, cfg)
//	result, _ := a.Run(ctx)
//
// # Thread Safety
//
// An Animator is driven from a single goroutine. Run blocks until the
// duration budget is spent or ctx is canceled.
package anim
