package pixel

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/nrzled"

	"github.com/coreman2200/funtimes-neopixel/model"
)

// DefaultSpeedHz is the SPI clock used to synthesize the NRZ bitstream.
// 2.5MHz gives the 0.4/0.8µs pulse widths WS2812 LEDs expect.
const DefaultSpeedHz = 2_500_000

// NRZ transmits frames through an NRZ LED encoder on a SPI port.
type NRZ struct {
	dev *nrzled.Dev
}

// NewNRZ wraps a SPI port with an encoder for a single 3-channel pixel.
func NewNRZ(p spi.Port, speedHz int) (*NRZ, error) {
	if speedHz <= 0 {
		speedHz = DefaultSpeedHz
	}
	opts := nrzled.Opts{
		NumPixels: 1,
		Channels:  3,
		Freq:      physic.Frequency(speedHz) * physic.Hertz,
	}
	d, err := nrzled.NewSPI(p, &opts)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return &NRZ{dev: d}, nil
}

// Transmit writes the raw wire bytes. The encoder consumes them as given,
// so the frame's GRB payload order is preserved on the line.
func (t *NRZ) Transmit(f model.Frame) error {
	n, err := t.dev.Write(f[:])
	if err != nil {
		return fmt.Errorf("nrz write: %w", err)
	}
	if n != len(f) {
		return fmt.Errorf("nrz write: short frame: %d of %d bytes", n, len(f))
	}
	return nil
}

func (t *NRZ) Halt() error {
	return t.dev.Halt()
}
