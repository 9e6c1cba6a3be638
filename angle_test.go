package tween

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadiansDegrees(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), 1e-12)
	assert.InDelta(t, math.Pi/2, Radians(90), 1e-12)
	assert.InDelta(t, 180.0, Degrees(math.Pi), 1e-12)

	// The conversions are inverses.
	for _, deg := range []float64{0, 15, 90, 180, 270, 359.5, -45} {
		assert.InDelta(t, deg, Degrees(Radians(deg)), 1e-9)
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 1.0, Lerp(1, 3, 0))
	assert.Equal(t, 3.0, Lerp(1, 3, 1))
	assert.Equal(t, 2.0, Lerp(1, 3, 0.5))

	// t is not clamped.
	assert.Equal(t, 5.0, Lerp(1, 3, 2))
	assert.Equal(t, -1.0, Lerp(1, 3, -1))
}

func TestLerpAngle_ShorterPath(t *testing.T) {
	// 350 -> 10 crosses the wrap: midpoint is 0, not 180.
	assert.InDelta(t, 0.0, LerpAngle(350, 10, 0.5), 1e-9)
	// The reverse direction wraps the other way to the same midpoint.
	assert.InDelta(t, 0.0, LerpAngle(10, 350, 0.5), 1e-9)
	// No wrap needed when the direct path is shorter.
	assert.InDelta(t, 30.0, LerpAngle(10, 50, 0.5), 1e-9)
	assert.InDelta(t, 90.0, LerpAngle(0, 180, 0.5), 1e-9)
	// Downward wrap lands above the start.
	assert.InDelta(t, 275.0, LerpAngle(0, 190, 0.5), 1e-9)
}

func TestLerpAngle_Endpoints(t *testing.T) {
	cases := [][2]float64{{350, 10}, {10, 350}, {0, 190}, {90, 270.5}}
	for _, c := range cases {
		v1, v2 := c[0], c[1]
		assert.InDelta(t, v1, LerpAngle(v1, v2, 0), 1e-9, "t=0 for %v", c)
		// t=1 reaches v2 (all cases here are already inside [0, 360)).
		assert.InDelta(t, v2, LerpAngle(v1, v2, 1), 1e-9, "t=1 for %v", c)
	}
}

func TestLerpAngle_ResultInRange(t *testing.T) {
	cases := [][2]float64{{350, 10}, {10, 350}, {0, 180}, {0, 190}, {359, 1}, {180, 180}}
	for _, c := range cases {
		for ti := 0; ti <= 10; ti++ {
			v := LerpAngle(c[0], c[1], float64(ti)/10)
			assert.GreaterOrEqual(t, v, 0.0, "pair %v t=%d", c, ti)
			assert.Less(t, v, 360.0, "pair %v t=%d", c, ti)
		}
	}
}

func TestLerpAngleRange(t *testing.T) {
	// Unit period: interpolating turns instead of degrees.
	assert.InDelta(t, 0.0, LerpAngleRange(0.9, 0.1, 0.5, 1), 1e-9)
	assert.InDelta(t, 0.95, LerpAngleRange(0.9, 0.1, 0.25, 1), 1e-9)
	// Radians period.
	assert.InDelta(t, 0.0, LerpAngleRange(2*math.Pi-0.5, 0.5, 0.5, 2*math.Pi), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10.0, Clamp(0, 10, 15))
	assert.Equal(t, 0.0, Clamp(0, 10, -5))
	assert.Equal(t, 5.0, Clamp(0, 10, 5))
	assert.Equal(t, 3.0, Clamp(3, 8, 2))

	// NaN bounds poison the result rather than being skipped.
	assert.True(t, math.IsNaN(Clamp(math.NaN(), 10, 5)))
	assert.True(t, math.IsNaN(Clamp(0, math.NaN(), 5)))
}

func TestClampMinMax(t *testing.T) {
	assert.Equal(t, 2.0, ClampMin(2, 1))
	assert.Equal(t, 7.0, ClampMin(2, 7))

	// ClampMax is the no-lower-bound clamp: values below max pass
	// through unchanged.
	assert.Equal(t, 5.0, ClampMax(10, 5))
	assert.Equal(t, 10.0, ClampMax(10, 15))
	assert.Equal(t, -99.0, ClampMax(10, -99))
}
