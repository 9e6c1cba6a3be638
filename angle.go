package tween

import "math"

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Lerp performs linear interpolation between v1 and v2.
// t=0 returns v1, t=1 returns v2. t is not clamped, so values outside
// [0, 1] extrapolate.
func Lerp(v1, v2, t float64) float64 {
	return v1 + (v2-v1)*t
}

// LerpAngle interpolates between two angles in degrees along the shorter
// arc, wrapping through 0/360 when that path is shorter. For t in [0, 1]
// the result lies in [0, 360); extrapolated t values carry no such
// guarantee. LerpAngle(350, 10, 0.5) is 0, not 180.
func LerpAngle(v1, v2, t float64) float64 {
	return LerpAngleRange(v1, v2, t, 360)
}

// LerpAngleRange is LerpAngle over an arbitrary period rng, for angle-like
// quantities that wrap at something other than 360 (turns at 1, radians at
// 2π). For t in [0, 1] the result lies in [0, rng).
func LerpAngleRange(v1, v2, t, rng float64) float64 {
	half := rng / 2
	switch d := v2 - v1; {
	case d < -half:
		// Shorter path wraps upward through rng.
		v := Lerp(v1, v2+rng, t)
		if v >= rng {
			v -= rng
		}
		return v
	case d > half:
		// Shorter path wraps downward through 0.
		v := Lerp(v1, v2-rng, t)
		if v < 0 {
			v += rng
		}
		return v
	default:
		return Lerp(v1, v2, t)
	}
}

// Clamp restricts value to [min, max].
// A NaN bound poisons the result to NaN rather than being ignored.
func Clamp(min, max, value float64) float64 {
	return math.Min(max, math.Max(min, value))
}

// ClampMin restricts value from below: the result is at least min.
func ClampMin(min, value float64) float64 {
	return math.Max(min, value)
}

// ClampMax restricts value from above: the result is at most max.
// This is also the no-lower-bound form of Clamp.
func ClampMax(max, value float64) float64 {
	return math.Min(max, value)
}
