package core

// PinMode selects the direction and pull state applied by DigitalPin.Setup.
// Values follow the Arduino numbering.
type PinMode uint8

const (
	PinInput       PinMode = 0
	PinOutput      PinMode = 1
	PinInputPullup PinMode = 2
)

// String returns the name of the mode.
func (m PinMode) String() string {
	switch m {
	case PinInput:
		return "input"
	case PinOutput:
		return "output"
	case PinInputPullup:
		return "input_pullup"
	}
	return "mode(" + itoa(int(m)) + ")"
}

// wiring is the addressing of one pin, resolved once and never modified.
type wiring struct {
	mreg Register // direction register
	ireg Register // input register
	oreg Register // output latch / pull-up enable
	mask uint8
	pin  Pin
}

// DigitalPin is a resolved digital pin. It is a small value type; copies
// share the same registers.
//
// Unmapped pins are ordinary handles wired to the resolver's fallback
// registers with a zero mask, so every operation on them is a no-op.
//
// The zero value has no registers and is not usable. Obtain handles from
// Resolver.DigitalPin or NewDigitalPin.
type DigitalPin struct {
	wiring wiring
	traits *Resolver
}

// Setup configures the pin direction and pull-up.
//
// The mode register and the output register are updated in two separate
// read-modify-write steps, mode register first. Unknown modes are ignored.
func (p DigitalPin) Setup(mode PinMode) {
	w := &p.wiring
	switch mode {
	case PinInput:
		w.mreg.ClearBits(w.mask)
		w.oreg.ClearBits(w.mask)
	case PinOutput:
		w.mreg.SetBits(w.mask)
		w.oreg.ClearBits(w.mask)
	case PinInputPullup:
		w.mreg.ClearBits(w.mask)
		w.oreg.SetBits(w.mask)
	}
}

// Read samples the pin. It returns true if the pin is high or if high is
// true, which lets callers treat an unmapped pin as logically high.
func (p DigitalPin) Read(high bool) bool {
	return p.wiring.ireg.HasBits(p.wiring.mask) || high
}

// Get is short for p.Read(false).
func (p DigitalPin) Get() bool {
	return p.Read(false)
}

// Write drives the output latch and returns value. On a pin configured as
// input this switches the pull-up instead.
func (p DigitalPin) Write(value bool) bool {
	if value {
		p.wiring.oreg.SetBits(p.wiring.mask)
	} else {
		p.wiring.oreg.ClearBits(p.wiring.mask)
	}
	return value
}

// High is short for p.Write(true).
func (p DigitalPin) High() {
	p.Write(true)
}

// Low is short for p.Write(false).
func (p DigitalPin) Low() {
	p.Write(false)
}

// IsOutput reports whether the direction register currently has the pin
// configured as output. Always false for unmapped pins.
func (p DigitalPin) IsOutput() bool {
	return p.wiring.mreg.HasBits(p.wiring.mask)
}

// Pin returns the logical pin number the handle was built from.
func (p DigitalPin) Pin() Pin {
	return p.wiring.pin
}

// InterruptNumber returns the external interrupt attached to the pin.
func (p DigitalPin) InterruptNumber() InterruptID {
	return p.traits.Interrupt(p.wiring.pin)
}

// HasPWM reports whether the pin supports hardware PWM.
func (p DigitalPin) HasPWM() bool {
	return p.traits.HasPWM(p.wiring.pin)
}
