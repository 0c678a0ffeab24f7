package core

// Pin is a logical pin number chosen by the application, e.g. 13 for the
// on-board LED of an Arduino Uno.
type Pin uint8

// Port identifies a byte-wide group of pins sharing one set of registers.
type Port uint8

// TimerID identifies the hardware timer channel attached to a pin.
type TimerID uint8

// InterruptID identifies the external interrupt line attached to a pin.
type InterruptID uint8

// Sentinels
const (
	NoPin          Pin         = 0xff // "no pin"; accepted everywhere a Pin is
	NotAPort       Port        = 0
	NotOnTimer     TimerID     = 0
	NotAnInterrupt InterruptID = 0xff
)

// Platform is the fixed pin-mapping table of a target. Board packages under
// targets/ implement it; core code only ever reaches it through a Resolver.
//
// The Pin functions are only called with pins for which PinToPort did not
// return NotAPort, and the register functions only with ports returned by
// PinToPort.
type Platform interface {
	// PinToPort returns the port of pin, or NotAPort if the pin is not wired
	PinToPort(pin Pin) Port

	// PinToBitMask returns the single-bit mask of pin within its port
	PinToBitMask(pin Pin) Mask

	// PinToTimer returns the timer channel of pin, or NotOnTimer
	PinToTimer(pin Pin) TimerID

	// PinToInterrupt returns the external interrupt of pin, or NotAnInterrupt
	PinToInterrupt(pin Pin) InterruptID

	// PinHasPWM reports whether pin can generate hardware PWM
	PinHasPWM(pin Pin) bool

	// PortModeRegister returns the direction register of port (1 = output)
	PortModeRegister(port Port) Register

	// PortInputRegister returns the register sampling the pin levels of port
	PortInputRegister(port Port) Register

	// PortOutputRegister returns the output latch of port, which doubles as
	// the pull-up enable for input pins
	PortOutputRegister(port Port) Register
}

// Default resolver used by NewDigitalPin.
var defaultResolver *Resolver

// SetPlatform is called by target-specific code to install its pin tables.
// It replaces the default resolver, including its fallback registers.
func SetPlatform(p Platform) {
	defaultResolver = NewResolver(p)
}

// MustResolver returns the default resolver or panics if missing.
func MustResolver() *Resolver {
	if defaultResolver == nil {
		panic("platform not configured")
	}
	return defaultResolver
}

// NewDigitalPin resolves pin against the platform installed with SetPlatform.
func NewDigitalPin(pin Pin) DigitalPin {
	return MustResolver().DigitalPin(pin)
}
