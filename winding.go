package tween

import "math"

// TriangleFace reports the winding of the ordered triangle (p1, p2, p3)
// as the 2D cross product of the vectors p1→p3 and p1→p2, clamped to
// [-1, 1].
//
// The value is the clamped raw cross product, not a strict ±1 sign:
// large triangles saturate at ±1, while thin or tiny triangles yield
// values near zero, and a degenerate (collinear) triangle yields exactly
// zero. Callers that need a discrete orientation should compare against
// zero rather than against ±1.
func TriangleFace(p1, p2, p3 Point) float64 {
	cross := p3.Sub(p1).Cross(p2.Sub(p1))
	return math.Min(1, math.Max(cross, -1))
}
