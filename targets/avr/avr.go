// Package avr implements core.Platform for classic megaAVR parts from
// Arduino-style pin tables.
//
// Every port has three consecutive registers in data space: PINx (input),
// DDRx (direction) and PORTx (output latch / pull-up enable). Ports are
// addressed by the data-space address of their PINx register.
package avr

import "fastio/core"

// IOSpace gives access to the I/O registers of an AVR data space.
type IOSpace interface {
	// PortRegisters returns the DDRx, PINx and PORTx registers of the port
	// whose PINx register lives at data-space address pinx.
	PortRegisters(pinx uint16) (ddr, pin, port core.Register)
}

// Arduino port numbers. PORTI does not exist on any supported part.
const (
	PA core.Port = 1
	PB core.Port = 2
	PC core.Port = 3
	PD core.Port = 4
	PE core.Port = 5
	PF core.Port = 6
	PG core.Port = 7
	PH core.Port = 8
	PJ core.Port = 10
	PK core.Port = 11
	PL core.Port = 12
)

// Arduino timer channel numbers, as returned by digitalPinToTimer.
const (
	TIMER0A core.TimerID = 1 + iota
	TIMER0B
	TIMER1A
	TIMER1B
	TIMER1C
	TIMER2
	TIMER2A
	TIMER2B
	TIMER3A
	TIMER3B
	TIMER3C
	TIMER4A
	TIMER4B
	TIMER4C
	TIMER4D
	TIMER5A
	TIMER5B
	TIMER5C
)

// Tables describes the fixed pin mapping of one part. Slices indexed by pin
// may be shorter than 255; pins past the end are unmapped.
type Tables struct {
	Name string

	// PINx address per port number, 0 for ports the part does not have
	PortAddr []uint16

	PinPort  []core.Port
	PinBit   []uint8
	PinTimer []core.TimerID

	// Interrupt maps a pin to its external interrupt (digitalPinToInterrupt)
	Interrupt func(pin core.Pin) core.InterruptID
	// PWM reports hardware PWM capability (digitalPinHasPWM)
	PWM func(pin core.Pin) bool
}

type portRegs struct {
	mode, input, output core.Register
}

// Board is a core.Platform for one part wired to one I/O space.
type Board struct {
	tables *Tables
	ports  []portRegs
}

// NewBoard binds t to the registers of io. Register lookups happen here,
// once per port.
func NewBoard(t *Tables, io IOSpace) *Board {
	b := &Board{
		tables: t,
		ports:  make([]portRegs, len(t.PortAddr)),
	}
	for port, addr := range t.PortAddr {
		if addr == 0 {
			continue
		}
		ddr, pin, out := io.PortRegisters(addr)
		b.ports[port] = portRegs{mode: ddr, input: pin, output: out}
	}
	return b
}

// Name returns the part name.
func (b *Board) Name() string {
	return b.tables.Name
}

// NumPins returns the number of logical pins in the tables.
func (b *Board) NumPins() int {
	return len(b.tables.PinPort)
}

// PinToPort implements core.Platform.
func (b *Board) PinToPort(pin core.Pin) core.Port {
	if int(pin) >= len(b.tables.PinPort) {
		return core.NotAPort
	}
	port := b.tables.PinPort[pin]
	if int(port) >= len(b.ports) || b.ports[port].mode == nil {
		return core.NotAPort
	}
	return port
}

// PinToBitMask implements core.Platform.
func (b *Board) PinToBitMask(pin core.Pin) core.Mask {
	return core.Mask(1 << b.tables.PinBit[pin])
}

// PinToTimer implements core.Platform.
func (b *Board) PinToTimer(pin core.Pin) core.TimerID {
	if int(pin) >= len(b.tables.PinTimer) {
		return core.NotOnTimer
	}
	return b.tables.PinTimer[pin]
}

// PinToInterrupt implements core.Platform.
func (b *Board) PinToInterrupt(pin core.Pin) core.InterruptID {
	if b.tables.Interrupt == nil {
		return core.NotAnInterrupt
	}
	return b.tables.Interrupt(pin)
}

// PinHasPWM implements core.Platform.
func (b *Board) PinHasPWM(pin core.Pin) bool {
	return b.tables.PWM != nil && b.tables.PWM(pin)
}

// PortModeRegister implements core.Platform.
func (b *Board) PortModeRegister(port core.Port) core.Register {
	return b.ports[port].mode
}

// PortInputRegister implements core.Platform.
func (b *Board) PortInputRegister(port core.Port) core.Register {
	return b.ports[port].input
}

// PortOutputRegister implements core.Platform.
func (b *Board) PortOutputRegister(port core.Port) core.Register {
	return b.ports[port].output
}
