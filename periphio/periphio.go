// Package periphio adapts fastio pins to periph.io's gpio.PinIO, so device
// drivers written against periph can drive a DigitalPin.
package periphio

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"

	"fastio/core"
)

var (
	ErrPullDown = errors.New("periphio: pull-down not supported")
	ErrEdge     = errors.New("periphio: edge detection not supported")
	ErrPWM      = errors.New("periphio: PWM not supported")
	ErrPull     = errors.New("periphio: invalid pull")
)

// Pin is a named DigitalPin implementing gpio.PinIO.
type Pin struct {
	name string
	dp   core.DigitalPin
	pull gpio.Pull
}

// New wraps dp under name. The pin is not touched until In or Out is called.
func New(name string, dp core.DigitalPin) *Pin {
	return &Pin{name: name, dp: dp, pull: gpio.PullNoChange}
}

// Register adds pins to the periph gpioreg registry under their names.
func Register(pins ...*Pin) error {
	for _, p := range pins {
		if err := gpioreg.Register(p); err != nil {
			return fmt.Errorf("periphio: register %s: %w", p.name, err)
		}
	}
	return nil
}

// DigitalPin returns the wrapped handle.
func (p *Pin) DigitalPin() core.DigitalPin {
	return p.dp
}

func (p *Pin) String() string {
	return p.name + "(" + core.Itoa(int(p.dp.Pin())) + ")"
}

// Halt returns the pin to a floating input.
func (p *Pin) Halt() error {
	p.dp.Setup(core.PinInput)
	p.pull = gpio.Float
	return nil
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number returns the logical pin number, or -1 for NoPin.
func (p *Pin) Number() int {
	if p.dp.Pin() == core.NoPin {
		return -1
	}
	return int(p.dp.Pin())
}

// Function implements pin.Pin.
//
// Deprecated: Use Func.
func (p *Pin) Function() string {
	return string(p.Func())
}

// Func reports IN or OUT from the direction register.
func (p *Pin) Func() pin.Func {
	if p.dp.IsOutput() {
		return gpio.OUT
	}
	return gpio.IN
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	return []pin.Func{gpio.IN, gpio.OUT}
}

// SetFunc implements pin.PinFunc. OUT drives the pin low.
func (p *Pin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.IN, gpio.FLOAT:
		return p.In(gpio.Float, gpio.NoEdge)
	case gpio.IN_HIGH:
		return p.In(gpio.PullUp, gpio.NoEdge)
	case gpio.OUT, gpio.OUT_LOW:
		return p.Out(gpio.Low)
	case gpio.OUT_HIGH:
		return p.Out(gpio.High)
	}
	return fmt.Errorf("periphio: %s: unsupported function %q", p.name, string(f))
}

// In implements gpio.PinIn.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	if edge != gpio.NoEdge {
		return fmt.Errorf("periphio: %s: %w", p.name, ErrEdge)
	}
	if pull == gpio.PullNoChange {
		pull = p.pull
	}
	switch pull {
	case gpio.PullUp:
		p.dp.Setup(core.PinInputPullup)
	case gpio.Float, gpio.PullNoChange:
		p.dp.Setup(core.PinInput)
		pull = gpio.Float
	case gpio.PullDown:
		return fmt.Errorf("periphio: %s: %w", p.name, ErrPullDown)
	default:
		return fmt.Errorf("periphio: %s: %w %d", p.name, ErrPull, pull)
	}
	p.pull = pull
	return nil
}

// Read implements gpio.PinIn.
func (p *Pin) Read() gpio.Level {
	return gpio.Level(p.dp.Get())
}

// WaitForEdge always returns false; edge detection is not available.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	return false
}

// Pull returns the pull set by the last In call.
func (p *Pin) Pull() gpio.Pull {
	return p.pull
}

// DefaultPull is Float: pull-ups are off after reset.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out implements gpio.PinOut.
func (p *Pin) Out(l gpio.Level) error {
	if !p.dp.IsOutput() {
		p.dp.Setup(core.PinOutput)
	}
	p.dp.Write(bool(l))
	return nil
}

// PWM implements gpio.PinOut. Hardware PWM is outside this package.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return fmt.Errorf("periphio: %s: %w", p.name, ErrPWM)
}

var (
	_ gpio.PinIO  = &Pin{}
	_ pin.PinFunc = &Pin{}
)
