package pixel

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Open initializes the periph host, opens the configured SPI port and wraps
// it in an NRZ transmitter. If no SPI port can be found, it falls back to the
// console preview so the animation can run on machines without the hardware.
func Open(dev string, speedHz int) (Transmitter, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}

	p, err := spireg.Open(dev)
	if err != nil {
		log.Warn().Err(err).Msg("No SPI port, rendering to console")
		return NewScreen(), nil
	}

	t, err := NewNRZ(p, speedHz)
	if err != nil {
		_ = p.Close()
		return nil, err
	}

	log.Info().Str("port", p.String()).Int("speed_hz", speedHz).Msg("Opened SPI NRZ transmitter")
	return t, nil
}
