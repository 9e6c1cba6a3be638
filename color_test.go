package tween

import (
	"fmt"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB_Extraction(t *testing.T) {
	r, g, b := HexToRGB(0x123456)
	assert.Equal(t, 0x12, r)
	assert.Equal(t, 0x34, g)
	assert.Equal(t, 0x56, b)
}

func TestHexRGBRoundTrip(t *testing.T) {
	cases := [][3]int{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{18, 52, 86},
		{1, 2, 3},
		{200, 100, 50},
	}
	for _, c := range cases {
		r, g, b := HexToRGB(RGBToHex(c[0], c[1], c[2]))
		assert.Equal(t, c[0], r)
		assert.Equal(t, c[1], g)
		assert.Equal(t, c[2], b)
	}
}

func TestRGBToHex_OutOfRangeCorrupts(t *testing.T) {
	// Channels are not clamped: a green of 300 overflows into the red
	// bit field. This behavior is part of the contract.
	hex := RGBToHex(0, 300, 0)
	r, g, b := HexToRGB(hex)
	assert.Equal(t, 1, r)
	assert.Equal(t, 44, g)
	assert.Equal(t, 0, b)
}

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		name    string
		hex     int
		h, s, l float64
	}{
		{"red", 0xFF0000, 0, 1, 0.5},
		{"green", 0x00FF00, 1.0 / 3, 1, 0.5},
		{"blue", 0x0000FF, 2.0 / 3, 1, 0.5},
		{"black", 0x000000, 0, 0, 0},
		{"white", 0xFFFFFF, 0, 0, 1},
		{"grey", 0x808080, 0, 0, 128.0 / 255},
		{"orange", 0xFF8000, 128.0 / 255 / 6, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := HexToHSL(tt.hex)
			assert.InDelta(t, tt.h, h, 1e-9)
			assert.InDelta(t, tt.s, s, 1e-9)
			assert.InDelta(t, tt.l, l, 1e-9)
		})
	}
}

func TestHexToHSL_RedSectorWrap(t *testing.T) {
	// Red dominant with blue above green: the raw hue is negative and
	// wraps up by six sectors instead of going negative.
	h, s, l := HexToHSL(0xFF0080)
	assert.InDelta(t, (6-128.0/255)/6, h, 1e-9)
	assert.InDelta(t, 1, s, 1e-9)
	assert.InDelta(t, 0.5, l, 1e-9)
	assert.GreaterOrEqual(t, h, 0.0)
	assert.Less(t, h, 1.0)
}

func TestHSLToHex_Primaries(t *testing.T) {
	assert.Equal(t, 0xFF0000, HSLToHex(0, 1, 0.5))
	assert.Equal(t, 0x00FF00, HSLToHex(1.0/3, 1, 0.5))
	assert.Equal(t, 0x0000FF, HSLToHex(2.0/3, 1, 0.5))
}

func TestHSLToHex_AchromaticQuirk(t *testing.T) {
	// Zero saturation packs the lightness without scaling it to 0-255,
	// so a normalized grey collapses to black.
	assert.Equal(t, 0x000000, HSLToHex(0, 0, 0.5))
	assert.Equal(t, 0x000000, HSLToHex(0.7, 0, 0.999))

	// Pre-scaled lightness passes through.
	assert.Equal(t, 0xC8C8C8, HSLToHex(0, 0, 200))
}

func TestHSLHexRoundTrip(t *testing.T) {
	// Chromatic colors round-trip within one count per channel.
	// Achromatic colors are excluded: the zero-saturation packing quirk
	// (see HSLToHex) collapses them by design.
	hexes := []int{
		0xFF8000, 0x3366CC, 0x00FF7F, 0x8B0000, 0x123456, 0xABCDEF,
		0x010203, 0xFEFDFC, 0x7F00FF, 0x40E0D0,
	}
	for _, hex := range hexes {
		t.Run(fmt.Sprintf("%06X", hex), func(t *testing.T) {
			got := HSLToHex(HexToHSL(hex))
			wr, wg, wb := HexToRGB(hex)
			gr, gg, gb := HexToRGB(got)
			assert.InDelta(t, wr, gr, 1)
			assert.InDelta(t, wg, gg, 1)
			assert.InDelta(t, wb, gb, 1)
		})
	}
}

// The go-colorful package implements the same standard HSL model and
// serves as an independent reference for the conversions.

func TestHSLToHex_MatchesColorful(t *testing.T) {
	cases := []struct{ h, s, l float64 }{
		{0.0, 1.0, 0.5},
		{0.25, 0.8, 0.4},
		{0.5, 0.6, 0.6},
		{0.75, 0.3, 0.7},
		{0.9, 1.0, 0.25},
	}
	for _, c := range cases {
		ref := colorful.Hsl(c.h*360, c.s, c.l)
		r, g, b := HexToRGB(HSLToHex(c.h, c.s, c.l))
		assert.InDelta(t, ref.R*255, float64(r), 1.0, "red for %+v", c)
		assert.InDelta(t, ref.G*255, float64(g), 1.0, "green for %+v", c)
		assert.InDelta(t, ref.B*255, float64(b), 1.0, "blue for %+v", c)
	}
}

func TestHexToHSL_MatchesColorful(t *testing.T) {
	hexes := []int{0xFF8000, 0x3366CC, 0x00FF7F, 0x8B0000, 0x40E0D0}
	for _, hex := range hexes {
		r, g, b := HexToRGB(hex)
		ref := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		refH, refS, refL := ref.Hsl()

		h, s, l := HexToHSL(hex)
		require.InDelta(t, refH, h*360, 1e-6, "hue for %06X", hex)
		require.InDelta(t, refS, s, 1e-9, "saturation for %06X", hex)
		require.InDelta(t, refL, l, 1e-9, "lightness for %06X", hex)
	}
}
