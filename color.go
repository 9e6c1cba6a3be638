package tween

import "math"

// Packed color conversions. A color is a 24-bit integer with red in bits
// 16-23, green in bits 8-15, and blue in bits 0-7, the usual 0xRRGGBB
// layout. HSL components are normalized to [0, 1].

// HexToRGB extracts the red, green, and blue channels from a packed hex
// color. The input is not validated: bits above 23 leak into the red
// channel.
func HexToRGB(hex int) (r, g, b int) {
	r = hex >> 16
	g = (hex >> 8) & 0xFF
	b = hex & 0xFF
	return r, g, b
}

// RGBToHex packs red, green, and blue channels into a hex color.
// Channels are not clamped: values outside [0, 255] corrupt the
// neighboring bit fields. Callers own the range check.
func RGBToHex(r, g, b int) int {
	return r<<16 | g<<8 | b
}

// HexToHSL converts a packed hex color to hue, saturation, and lightness,
// each normalized to [0, 1]. Achromatic colors (equal channels) return
// hue 0 and saturation 0.
func HexToHSL(hex int) (h, s, l float64) {
	ri, gi, bi := HexToRGB(hex)
	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l < 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2 - max - min)
	}

	// Hue sector by dominant channel, in sixths of a turn.
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h /= 6

	return h, s, l
}

// HSLToHex converts hue, saturation, and lightness (each in [0, 1], hue
// in [0, 1)) to a packed hex color.
//
// When saturation is exactly zero the lightness is packed as-is, without
// the 255 scale, so a grey in [0, 1] lightness collapses to a near-black
// value. Callers that want a displayable grey must pre-scale the
// lightness themselves. This mirrors the historical behavior of the
// conversion and is kept for compatibility.
func HSLToHex(h, s, l float64) int {
	if s == 0 {
		v := int(l)
		return RGBToHex(v, v, v)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(h+1.0/3, p, q)
	g := hueToChannel(h, p, q)
	b := hueToChannel(h-1.0/3, p, q)

	return RGBToHex(
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)),
	)
}

// hueToChannel evaluates one channel of the HSL piecewise hue function.
// t is the hue offset for the channel and is first wrapped into [0, 1].
func hueToChannel(t, p, q float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
