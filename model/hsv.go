package model

import "math"

// Frame is one complete wire payload for a single WS2812-class pixel: three
// bytes in the order the device clocks them in, which is green, red, blue —
// NOT the conventional RGB order.
type Frame [3]byte

// HSV is a color in hue/saturation/value space. H is in degrees and wraps
// (negative and >=360 values are normalized mod 360). S and V are percents
// in [0,100]; out-of-range values are clamped.
type HSV struct {
	H int
	S int
	V int
}

// GRB converts the color to its wire frame.
func (c HSV) GRB() Frame {
	return HSVToGRB(c.H, c.S, c.V)
}

// HSVToGRB converts an HSV color to the GRB byte order WS2812 LEDs expect.
// Standard sector decomposition: six 60°-wide half-open sectors, chroma
// C = V·S, secondary X = C·(1-|((H/60) mod 2)-1|), offset m = V-C. Channel
// values are scaled to [0,255] and truncated.
func HSVToGRB(h, s, v int) Frame {
	h %= 360
	if h < 0 {
		h += 360
	}
	s = clampPercent(s)
	v = clampPercent(v)

	S := float64(s) / 100
	V := float64(v) / 100
	C := V * S
	X := C * (1 - math.Abs(math.Mod(float64(h)/60, 2)-1))
	m := V - C

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = C, X, 0
	case h < 120:
		r, g, b = X, C, 0
	case h < 180:
		r, g, b = 0, C, X
	case h < 240:
		r, g, b = 0, X, C
	case h < 300:
		r, g, b = X, 0, C
	default:
		r, g, b = C, 0, X
	}

	return Frame{
		byte((g + m) * 255),
		byte((r + m) * 255),
		byte((b + m) * 255),
	}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
