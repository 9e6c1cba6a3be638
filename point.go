package tween

import "math"

// Point represents a 2D point or vector.
// The same type serves both roles: functions that take a direction (such
// as Shift) accept a Point whose components are the direction components.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero point if the vector has zero length.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q; t outside [0, 1] extrapolates.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// LerpInto is the in-place variant of Lerp: it writes the interpolated
// point through dst instead of returning it. dst may alias p or q.
func (p Point) LerpInto(q Point, t float64, dst *Point) {
	dst.X = p.X + (q.X-p.X)*t
	dst.Y = p.Y + (q.Y-p.Y)*t
}

// HeadingTo returns the direction from p to q as an angle in radians
// measured from the positive Y axis (compass-style: straight down is 0,
// increasing toward positive X). Note the atan2 argument order is
// (dx, dy); this is the deliberate heading convention, not the
// conventional angle from the X axis.
func (p Point) HeadingTo(q Point) float64 {
	return math.Atan2(q.X-p.X, q.Y-p.Y)
}

// Shift moves the point in place by dir scaled by mag.
// dir is treated as a direction and is not normalized; callers that want
// a fixed step length must pass a unit direction.
func (p *Point) Shift(dir Point, mag float64) {
	p.X += dir.X * mag
	p.Y += dir.Y * mag
}

// RotateAround rotates the point in place by angle radians about center.
func (p *Point) RotateAround(center Point, angle float64) {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	dx := p.X - center.X
	dy := p.Y - center.Y
	p.X = center.X + dx*cos - dy*sin
	p.Y = center.Y + dx*sin + dy*cos
}
