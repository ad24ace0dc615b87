// Package config loads the settings of the go-icm42605 tool.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Bus kinds.
const (
	BusI2C    = "i2c"
	BusSerial = "serial"
)

var ErrInvalid = errors.New("invalid configuration")

type Bus struct {
	// Kind is "i2c" for a Linux i2c-dev device or "serial" for a USB-I2C adapter.
	Kind    string        `yaml:"kind"`
	Device  string        `yaml:"device"`
	Baud    int           `yaml:"baud"`
	Timeout time.Duration `yaml:"timeout"`
}

type Interrupt struct {
	Chip    string        `yaml:"chip"`
	Line    int           `yaml:"line"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Bus       Bus       `yaml:"bus"`
	AD0       bool      `yaml:"ad0"`
	Interrupt Interrupt `yaml:"interrupt"`
	// Trace is the path of a bus trace file, empty to disable tracing.
	Trace    string `yaml:"trace"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings for a sensor on the first Raspberry Pi I2C bus.
func Default() Config {
	return Config{
		Bus: Bus{
			Kind:    BusI2C,
			Device:  "/dev/i2c-1",
			Baud:    115200,
			Timeout: 500 * time.Millisecond,
		},
		Interrupt: Interrupt{
			Chip:    "gpiochip0",
			Line:    24,
			Timeout: 2 * time.Second,
		},
		LogLevel: "info",
	}
}

// Parse reads YAML settings on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the YAML file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func (c Config) Validate() error {
	switch c.Bus.Kind {
	case BusI2C:
	case BusSerial:
		if c.Bus.Baud <= 0 {
			return fmt.Errorf("bus.baud %d: %w", c.Bus.Baud, ErrInvalid)
		}
	default:
		return fmt.Errorf("bus.kind %q: %w", c.Bus.Kind, ErrInvalid)
	}
	if c.Bus.Device == "" {
		return fmt.Errorf("bus.device is empty: %w", ErrInvalid)
	}
	if c.Bus.Timeout <= 0 || c.Interrupt.Timeout <= 0 {
		return fmt.Errorf("timeouts must be positive: %w", ErrInvalid)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	return level, nil
}
