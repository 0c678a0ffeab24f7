package core

// Resolver translates logical pins into addressing facts for one platform.
//
// Unmapped pins (NoPin, or anything the platform maps to NotAPort) resolve to
// a zero mask and to the resolver's own fallback registers. Every bitwise
// operation against them is then harmless, so DigitalPin never needs to test
// validity on the hot path.
type Resolver struct {
	platform Platform

	// Fallback registers for unmapped pins. Shared by every unmapped pin of
	// this resolver, never aliased with hardware.
	fakeMode   Cell
	fakeInput  Cell
	fakeOutput Cell
}

// NewResolver creates a resolver over p with zeroed fallback registers.
func NewResolver(p Platform) *Resolver {
	return &Resolver{platform: p}
}

// Port returns the port of pin, or NotAPort for NoPin and unmapped pins.
// All other queries go through here so the invalid-pin rule lives in one place.
func (r *Resolver) Port(pin Pin) Port {
	if pin == NoPin {
		return NotAPort
	}
	return r.platform.PinToPort(pin)
}

// Valid reports whether pin is wired to a real port.
func (r *Resolver) Valid(pin Pin) bool {
	return r.Port(pin) != NotAPort
}

// BitMask returns the mask of pin within its port, or 0.
func (r *Resolver) BitMask(pin Pin) Mask {
	if r.Port(pin) == NotAPort {
		return 0
	}
	return r.platform.PinToBitMask(pin)
}

// Timer returns the timer channel of pin, or NotOnTimer.
func (r *Resolver) Timer(pin Pin) TimerID {
	if r.Port(pin) == NotAPort {
		return NotOnTimer
	}
	return r.platform.PinToTimer(pin)
}

// ModeRegister returns the direction register of pin's port. Never nil.
func (r *Resolver) ModeRegister(pin Pin) Register {
	port := r.Port(pin)
	if port == NotAPort {
		return &r.fakeMode
	}
	return orFallback(r.platform.PortModeRegister(port), &r.fakeMode)
}

// InputRegister returns the input register of pin's port. Never nil.
func (r *Resolver) InputRegister(pin Pin) Register {
	port := r.Port(pin)
	if port == NotAPort {
		return &r.fakeInput
	}
	return orFallback(r.platform.PortInputRegister(port), &r.fakeInput)
}

// OutputRegister returns the output register of pin's port. Never nil.
func (r *Resolver) OutputRegister(pin Pin) Register {
	port := r.Port(pin)
	if port == NotAPort {
		return &r.fakeOutput
	}
	return orFallback(r.platform.PortOutputRegister(port), &r.fakeOutput)
}

// Interrupt returns the external interrupt of pin, or NotAnInterrupt.
func (r *Resolver) Interrupt(pin Pin) InterruptID {
	if r.Port(pin) == NotAPort {
		return NotAnInterrupt
	}
	return r.platform.PinToInterrupt(pin)
}

// HasPWM reports whether pin supports hardware PWM. False for unmapped pins.
func (r *Resolver) HasPWM(pin Pin) bool {
	if r.Port(pin) == NotAPort {
		return false
	}
	return r.platform.PinHasPWM(pin)
}

// Fallback returns the registers handed to unmapped pins.
func (r *Resolver) Fallback() (mode, input, output *Cell) {
	return &r.fakeMode, &r.fakeInput, &r.fakeOutput
}

// DigitalPin resolves pin once and returns its handle.
func (r *Resolver) DigitalPin(pin Pin) DigitalPin {
	w := wiring{
		mreg: r.ModeRegister(pin),
		ireg: r.InputRegister(pin),
		oreg: r.OutputRegister(pin),
		mask: uint8(r.BitMask(pin)),
		pin:  pin,
	}
	if debugEnabled {
		if w.mask == 0 {
			DebugPrintln("[PIN] pin=" + itoa(int(pin)) + " unmapped")
		} else {
			DebugPrintln("[PIN] pin=" + itoa(int(pin)) +
				" port=" + itoa(int(r.Port(pin))) +
				" mask=" + hex8(w.mask))
		}
	}
	return DigitalPin{wiring: w, traits: r}
}

// orFallback guards against platforms returning a nil register for a port
// they claim to know.
func orFallback(reg Register, fallback *Cell) Register {
	if reg == nil {
		return fallback
	}
	return reg
}
