// Package viz provides the terminal presentation around the animation line.
//
// The package implements:
//
//   - [Model]: a Bubble Tea program that steps an [anim.Animator] on every
//     tick and draws its line inside a panel
//   - [Summary]: the post-run metrics panel printed by the CLI
//
// # Key Bindings
//
//	Q, Ctrl+C - Stop the animation
//
// The animation itself cannot be steered from the keyboard; the live view
// only adds a way to stop it early.
package viz
