// Package config loads the daemon configuration. Defaults reproduce the
// original fixed animation constants, so running without a config file is
// fine.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0, empty = first available
	SpeedHz int    `yaml:"speed_hz"` // e.g. 2500000
}

type Log struct {
	Level  string `yaml:"level"`
	Colors bool   `yaml:"colors"`
}

type Config struct {
	SPI SPI `yaml:"spi"`

	// ColorOrder is a wiring sanity check. The onboard NeoPixel is GRB and
	// the converter emits GRB; anything else is rejected.
	ColorOrder string `yaml:"color_order"`

	Tick    Duration `yaml:"tick"`     // delay between animation steps
	HueStep int      `yaml:"hue_step"` // degrees per step, must divide 360

	Log Log `yaml:"log"`
}

func Default() Config {
	return Config{
		SPI:        SPI{SpeedHz: 2500000},
		ColorOrder: "GRB",
		Tick:       Duration(20 * time.Millisecond),
		HueStep:    2,
		Log:        Log{Level: "info", Colors: true},
	}
}

// Load reads the YAML config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.ColorOrder != "GRB" {
		return fmt.Errorf("unsupported color order %q (this LED is GRB)", c.ColorOrder)
	}
	if c.HueStep <= 0 || 360%c.HueStep != 0 {
		return fmt.Errorf("hue_step %d must be positive and divide 360", c.HueStep)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive")
	}
	return nil
}

// Duration wraps time.Duration for YAML unmarshalling ("20ms", "1s", ...).
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
