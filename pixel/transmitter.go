// Package pixel provides the hardware transmit path for single-pixel frames.
//
// The real output device is a WS2812-class NRZ LED fed from a SPI port via
// periph.io's nrzled encoder, which reproduces the strict bit timing the LED
// protocol requires. When no SPI port is present (development machines), a
// console preview drawer stands in.
package pixel

import "github.com/coreman2200/funtimes-neopixel/model"

// Transmitter pushes one wire frame to the LED. Transmit blocks until the
// frame is fully handed to the device; the line carries one frame at a time,
// so callers must not overlap transmissions.
type Transmitter interface {
	Transmit(f model.Frame) error
	// Halt turns the output off and releases it.
	Halt() error
}
