// Package anim runs the rainbow animation: a free-running hue rotation at
// full saturation and brightness, one frame per tick.
package anim

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-neopixel/model"
	"github.com/coreman2200/funtimes-neopixel/pixel"
)

const (
	// DefaultTick is the delay between animation steps.
	DefaultTick = 20 * time.Millisecond
	// DefaultHueStep is the hue advance per step, in degrees.
	DefaultHueStep = 2
)

// FrameObserver receives the hue and wire bytes of selected frames. The
// driver calls it once every 10 hue degrees.
type FrameObserver func(hue int, f model.Frame)

// LogObserver logs observed frames through the given logger.
func LogObserver(logger zerolog.Logger) FrameObserver {
	return func(hue int, f model.Frame) {
		logger.Info().
			Int("hue", hue).
			Ints("grb", []int{int(f[0]), int(f[1]), int(f[2])}).
			Msg("Frame")
	}
}

// Options configure a Rainbow. Zero values select the defaults.
type Options struct {
	HueStep  int
	Tick     time.Duration
	Observer FrameObserver
}

// Rainbow owns the animation state. Not safe for concurrent use; a single
// goroutine drives it.
type Rainbow struct {
	tx      pixel.Transmitter
	hue     int
	step    int
	tick    time.Duration
	observe FrameObserver
}

func New(tx pixel.Transmitter, opts Options) *Rainbow {
	if opts.HueStep <= 0 {
		opts.HueStep = DefaultHueStep
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	return &Rainbow{
		tx:      tx,
		step:    opts.HueStep,
		tick:    opts.Tick,
		observe: opts.Observer,
	}
}

// Hue returns the current hue, in [0,360).
func (r *Rainbow) Hue() int {
	return r.hue
}

// Step advances the animation by one tick: convert the current hue, push the
// frame to the LED, report it every 10 hue degrees, then advance the hue.
// A transmit failure leaves the hue untouched and is returned as-is; there is
// no retry, the caller treats it as fatal.
func (r *Rainbow) Step() error {
	f := model.HSVToGRB(r.hue, 100, 100)
	if err := r.tx.Transmit(f); err != nil {
		return fmt.Errorf("transmit frame: %w", err)
	}
	if r.hue%10 == 0 && r.observe != nil {
		r.observe(r.hue, f)
	}
	r.hue = (r.hue + r.step) % 360
	return nil
}

// Run steps the animation on a fixed ticker until the context is canceled or
// a transmit fails. Cancellation is a normal stop and returns nil.
func (r *Rainbow) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		if err := r.Step(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
