package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-neopixel/anim"
	"github.com/coreman2200/funtimes-neopixel/internal/config"
	"github.com/coreman2200/funtimes-neopixel/pixel"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.Log.Level, cfg.Log.Colors)

	log.Info().Str("config", configPath).Msg("Starting rainbow")

	tx, err := pixel.Open(cfg.SPI.Dev, cfg.SPI.SpeedHz)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open transmitter")
	}
	defer func() {
		if err := tx.Halt(); err != nil {
			log.Error().Err(err).Msg("Failed to halt transmitter")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rainbow := anim.New(tx, anim.Options{
		HueStep:  cfg.HueStep,
		Tick:     time.Duration(cfg.Tick),
		Observer: anim.LogObserver(log.Logger),
	})

	// Transmit failures are fatal: there is no retry policy, a failed frame
	// means the peripheral is gone.
	if err := rainbow.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Animation aborted")
	}

	log.Info().Msg("Shutting down")
}

func setupLogging(level string, colors bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !colors,
	})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
