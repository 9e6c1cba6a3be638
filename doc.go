// Package tween provides small, pure math utilities for 2D geometry,
// interpolation, and color conversion.
//
// # Overview
//
// tween is a leaf computation library: every function is a stateless
// transformation of numeric or point inputs to numeric or point outputs.
// There is no I/O, no shared state, and no goroutine coordination. The
// package groups into:
//   - Interpolation: Lerp, LerpAngle, Clamp and friends
//   - Points: Point with vector arithmetic and in-place mutators
//   - Curves: Line, QuadBez, CubicBez with evaluation, subdivision,
//     extrema, and intersection
//   - Colors: packed 24-bit hex integers converted to and from RGB and HSL
//
// # Quick Start
//
//	import "github.com/tweenkit/tween"
//
//	mid := tween.Lerp(0, 10, 0.5)            // 5
//	h, s, l := tween.HexToHSL(0xFF8000)      // orange as HSL
//	c := tween.NewCubicBez(p0, p1, p2, p3)
//	pt := c.Eval(0.25)                       // point on the curve
//
// # Conventions
//
// Coordinates use standard computer graphics orientation: origin at
// top-left, X increases right, Y increases down. Angles are radians unless
// a function name says otherwise. Heading angles (Point.HeadingTo,
// CubicBez.Heading) are measured from the positive Y axis, compass-style;
// see the individual functions.
//
// Functions that produce a Point come in pairs: a pure variant returning a
// new value and an Into variant writing through a caller-supplied pointer,
// for callers that reuse scratch points in hot loops.
//
// # Error Handling
//
// No function returns an error. Degenerate inputs produce well-defined
// numeric results: parallel lines report no intersection via an ok bool
// (and a NaN-filled target in the Into variant), and out-of-range color
// channels corrupt neighboring bit fields rather than failing. See the
// individual function docs for the exact contracts.
package tween

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
