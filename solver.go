package tween

import "math"

// Quadratic root solver used by the curve extrema calculations.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// The function is numerically robust:
//   - If a is zero or nearly zero, treats as linear equation
//   - If all coefficients are zero, returns a single 0.0
//   - Handles overflow in the discriminant gracefully
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients to avoid overflow in discriminant calculation.
	sc0 := c / a
	sc1 := b / a

	if !isFinite(sc0) || !isFinite(sc1) {
		return solveQuadraticLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		return solveQuadraticOverflow(sc0, sc1)
	}

	if arg < 0.0 {
		// Complex roots only.
		return nil
	}
	if arg == 0.0 {
		// One double root.
		return []float64{-0.5 * sc1}
	}

	// Two distinct roots. Use the numerically stable formula to avoid
	// cancellation between sc1 and the square root.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1

	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticOverflow handles discriminant overflow: one root from
// sc1*x + x^2 = 0, the other as sc0/root1.
func solveQuadraticOverflow(sc0, sc1 float64) []float64 {
	root1 := -sc1
	root2 := sc0 / root1

	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticLinear handles the case when a is zero or very small.
func solveQuadraticLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}

	// Degenerate case: all coefficients effectively zero.
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// SolveQuadraticInUnitInterval returns roots of ax^2 + bx + c = 0 that lie
// in [0, 1]. This is useful for finding parameter values on Bezier curves.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	roots := SolveQuadratic(a, b, c)
	if len(roots) == 0 {
		return nil
	}

	// Clamp roots a hair outside the interval back onto the boundary so
	// endpoint extrema survive floating point noise.
	const eps = 1e-12
	result := make([]float64, 0, len(roots))
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			if r < 0.0 {
				r = 0.0
			} else if r > 1.0 {
				r = 1.0
			}
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
