// Package config loads named pin assignments from JSON and turns them into
// configured DigitalPin handles.
//
//	{"board": "atmega328p",
//	 "pins": {"led":    {"pin": 13, "mode": "output", "initial": true},
//	          "button": {"pin": 2, "mode": "input_pullup"}}}
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"fastio/core"
	"fastio/targets/atmega2560"
	"fastio/targets/atmega328p"
	"fastio/targets/avr"
)

var (
	ErrMode      = errors.New("config: unknown pin mode")
	ErrPinRange  = errors.New("config: pin out of range")
	ErrDuplicate = errors.New("config: pin assigned twice")
	ErrBoard     = errors.New("config: unknown board")
)

// Config is a board name plus named pins.
type Config struct {
	Board string               `json:"board"`
	Pins  map[string]PinConfig `json:"pins"`
}

// PinConfig describes one named pin. A missing pin number means NoPin, a
// missing mode means input.
type PinConfig struct {
	Pin     *int   `json:"pin,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Initial bool   `json:"initial,omitempty"` // output level after setup
}

// Number returns the configured pin, or NoPin when it is missing or out of
// range.
func (pc PinConfig) Number() core.Pin {
	if pc.Pin == nil || *pc.Pin < 0 || *pc.Pin > int(core.NoPin) {
		return core.NoPin
	}
	return core.Pin(*pc.Pin)
}

// Load parses a JSON configuration and applies defaults.
func Load(jsonData []byte) (*Config, error) {
	var config Config

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	applyDefaults(&config)

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyDefaults fills in missing values
func applyDefaults(config *Config) {
	if config.Board == "" {
		config.Board = "atmega328p"
	}
	if config.Pins == nil {
		config.Pins = map[string]PinConfig{}
	}

	for name, pc := range config.Pins {
		if pc.Pin == nil {
			none := int(core.NoPin)
			pc.Pin = &none
		}
		if pc.Mode == "" {
			pc.Mode = core.PinInput.String()
		}
		config.Pins[name] = pc
	}
}

func (c *Config) validate() error {
	owner := make(map[core.Pin]string)
	for name, pc := range c.Pins {
		if *pc.Pin < 0 || *pc.Pin > int(core.NoPin) {
			return fmt.Errorf("%w: %s=%d", ErrPinRange, name, *pc.Pin)
		}
		if _, err := ParseMode(pc.Mode); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		pin := pc.Number()
		if pin == core.NoPin {
			continue
		}
		if prev, ok := owner[pin]; ok {
			return fmt.Errorf("%w: %d used by %s and %s", ErrDuplicate, pin, prev, name)
		}
		owner[pin] = name
	}
	return nil
}

// ParseMode converts a mode name as printed by PinMode.String.
func ParseMode(s string) (core.PinMode, error) {
	for _, m := range []core.PinMode{core.PinInput, core.PinOutput, core.PinInputPullup} {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrMode, s)
}

// Pin returns the pin assigned to name, or NoPin.
func (c *Config) Pin(name string) core.Pin {
	pc, ok := c.Pins[name]
	if !ok {
		return core.NoPin
	}
	return pc.Number()
}

// Tables returns the pin tables of the configured board.
func (c *Config) Tables() (*avr.Tables, error) {
	switch c.Board {
	case atmega328p.Tables.Name:
		return &atmega328p.Tables, nil
	case atmega2560.Tables.Name:
		return &atmega2560.Tables, nil
	}
	return nil, fmt.Errorf("%w %q", ErrBoard, c.Board)
}

// Platform builds the configured board over io.
func (c *Config) Platform(io avr.IOSpace) (*avr.Board, error) {
	t, err := c.Tables()
	if err != nil {
		return nil, err
	}
	return avr.NewBoard(t, io), nil
}

// Apply resolves every named pin against r and runs its setup. Output pins
// are then driven to their initial level.
//
// Every name in c.Pins is present in the result. A pin whose entry is
// invalid is returned unmapped and untouched, and its error is joined into
// the returned error.
func (c *Config) Apply(r *core.Resolver) (map[string]core.DigitalPin, error) {
	out := make(map[string]core.DigitalPin, len(c.Pins))
	var errs []error
	for name, pc := range c.Pins {
		mode, err := ParseMode(pc.Mode)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			out[name] = r.DigitalPin(core.NoPin)
			continue
		}
		if pc.Pin != nil && (*pc.Pin < 0 || *pc.Pin > int(core.NoPin)) {
			errs = append(errs, fmt.Errorf("%w: %s=%d", ErrPinRange, name, *pc.Pin))
			out[name] = r.DigitalPin(core.NoPin)
			continue
		}
		dp := r.DigitalPin(pc.Number())
		dp.Setup(mode)
		if mode == core.PinOutput && pc.Initial {
			dp.High()
		}
		out[name] = dp
	}
	return out, errors.Join(errs...)
}

// DefaultConfig returns the on-board LED of an Arduino Uno.
func DefaultConfig() *Config {
	led := int(atmega328p.LED)
	return &Config{
		Board: atmega328p.Tables.Name,
		Pins: map[string]PinConfig{
			"led": {Pin: &led, Mode: core.PinOutput.String()},
		},
	}
}
