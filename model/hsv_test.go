package model_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/funtimes-neopixel/model"
)

// Sector boundaries at full saturation and value. Wire order is GRB, so pure
// red (h=0) lands in byte 1, not byte 0.
var TestBoundaryHueGivesExpectedFrame = []struct {
	Hue    int
	Expect Frame
}{
	{0, Frame{0, 255, 0}},
	{60, Frame{255, 255, 0}},
	{120, Frame{255, 0, 0}},
	{180, Frame{255, 0, 255}},
	{240, Frame{0, 0, 255}},
	{300, Frame{0, 255, 255}},
}

func TestSectorBoundaries(t *testing.T) {
	for _, v := range TestBoundaryHueGivesExpectedFrame {
		t.Run("Hue"+strconv.Itoa(v.Hue), func(t *testing.T) {
			assert.Equal(t, v.Expect, HSVToGRB(v.Hue, 100, 100), "should be boundary frame")
		})
	}
}

func TestMidSectorTruncation(t *testing.T) {
	// h=30: r=1, g=0.5, b=0 -> 127.5 truncates to 127.
	assert.Equal(t, Frame{127, 255, 0}, HSVToGRB(30, 100, 100))
}

func TestGreyAndBlack(t *testing.T) {
	assert.Equal(t, Frame{255, 255, 255}, HSVToGRB(123, 0, 100), "zero saturation is white")
	assert.Equal(t, Frame{0, 0, 0}, HSVToGRB(123, 100, 0), "zero value is black")
}

func TestHueWraps(t *testing.T) {
	for _, h := range []int{0, 45, 90, 181, 359} {
		assert.Equal(t, HSVToGRB(h, 100, 100), HSVToGRB(h+360, 100, 100))
		assert.Equal(t, HSVToGRB(h, 100, 100), HSVToGRB(h-360, 100, 100))
		assert.Equal(t, HSVToGRB(h, 100, 100), HSVToGRB(h+720, 100, 100))
	}
}

func TestSaturationValueClamped(t *testing.T) {
	assert.Equal(t, HSVToGRB(40, 100, 100), HSVToGRB(40, 150, 130))
	assert.Equal(t, HSVToGRB(40, 0, 100), HSVToGRB(40, -20, 100))
	assert.Equal(t, HSVToGRB(40, 100, 0), HSVToGRB(40, 100, -1))
}

// rawRGB is an independent rendition of the sector formula, kept in RGB
// order. The converter must emit exactly these values permuted to GRB.
func rawRGB(h, s, v int) (byte, byte, byte) {
	h = ((h % 360) + 360) % 360
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
	return byte((r + m) * 255), byte((g + m) * 255), byte((b + m) * 255)
}

func TestFrameIsPermutedRGB(t *testing.T) {
	for h := -360; h < 720; h += 7 {
		for _, s := range []int{0, 25, 50, 75, 100} {
			for _, v := range []int{0, 25, 50, 75, 100} {
				r, g, b := rawRGB(h, s, v)
				f := HSVToGRB(h, s, v)
				assert.Equal(t, Frame{g, r, b}, f, "h=%d s=%d v=%d", h, s, v)
			}
		}
	}
}

func TestHSVMethodMatchesFunc(t *testing.T) {
	c := HSV{H: 200, S: 80, V: 60}
	assert.Equal(t, HSVToGRB(200, 80, 60), c.GRB())
}
