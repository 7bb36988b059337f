// Package curve provides the motion model for points travelling along an arc.
//
// The package defines the types shared by every curve family:
//
//   - [Point]: one particle's index position, render position and direction
//   - [Params]: the immutable shape parameters of a run
//   - [Shape]: the capability every family implements (advance a point,
//     report its render axis)
//   - [Ellipse], [Parabola]: the two built-in families
//
// # Example
//
//	shape, _ := curve.New("ellipse", 2.0)
//	p := shape.Advance(curve.Origin(), 1)
//
// Shapes carry no mutable state; Advance is safe to call repeatedly with the
// same input and always yields the same output.
package curve
