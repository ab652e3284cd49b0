package pixel

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	"github.com/coreman2200/funtimes-neopixel/model"
)

// Screen renders frames as ANSI color cells on the console. Stand-in for the
// LED when no SPI port is available.
type Screen struct {
	drawer display.Drawer
}

func NewScreen() *Screen {
	return &Screen{drawer: screen.New(1)}
}

// Transmit draws the frame as a 1x1 image. The drawer wants RGB, so the
// wire bytes are permuted back before display.
func (s *Screen) Transmit(f model.Frame) error {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: f[1], G: f[0], B: f[2], A: 255})
	return s.drawer.Draw(s.drawer.Bounds(), img, image.Point{})
}

func (s *Screen) Halt() error {
	return s.drawer.Halt()
}
