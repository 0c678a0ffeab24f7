// Package expander exposes an MCP23017 I2C port expander as a core.Platform,
// so DigitalPin handles can drive its 16 pins like on-chip GPIO.
//
// Pins 0-7 are on port A, pins 8-15 on port B. The chip's registers are
// mapped onto the AVR register model:
//
//	mode   -> IODIR, inverted (set bit = output)
//	input  -> GPIO
//	output -> OLAT, and GPPU for pins configured as input
//
// The output latch is read from OLAT when the Expander is created and
// written to OLAT directly, so a chip that kept its state across an MCU
// reset is tracked correctly.
//
// core.Register has no error return, so I2C failures are recorded and
// reported through Err and the debug writer.
package expander

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/mcp23017"

	"fastio/core"
)

// Ports of the expander.
const (
	PortA core.Port = 1
	PortB core.Port = 2
)

// NumPins is the number of pins on the chip.
const NumPins = mcp23017.PinCount

// OLATA; OLATB follows (IOCON.BANK = 0).
const regOLAT = 0x14

var ErrAddress = errors.New("expander: invalid I2C address")

// Expander is an MCP23017 wired as a core.Platform.
type Expander struct {
	bus   drivers.I2C
	addr  uint8
	dev   *mcp23017.Device
	modes [NumPins]mcp23017.PinMode
	latch mcp23017.Pins
	err   error

	views [2]portViews
}

type portViews struct {
	mode, input, output view
}

// New probes the chip at addr on bus and reads back its current direction
// and pull-up configuration.
func New(bus drivers.I2C, addr uint8) (*Expander, error) {
	dev, err := mcp23017.NewI2C(bus, addr)
	if err != nil {
		if errors.Is(err, mcp23017.ErrInvalidHWAddress) {
			return nil, ErrAddress
		}
		return nil, err
	}
	e := &Expander{bus: bus, addr: addr, dev: dev}
	if err := dev.GetModes(e.modes[:]); err != nil {
		return nil, err
	}
	if e.latch, err = e.readLatch(); err != nil {
		return nil, err
	}
	for i := range e.views {
		shift := uint8(8 * i)
		e.views[i] = portViews{
			mode:   view{e: e, kind: kindMode, shift: shift},
			input:  view{e: e, kind: kindInput, shift: shift},
			output: view{e: e, kind: kindOutput, shift: shift},
		}
	}
	return e, nil
}

// Err returns the most recent I2C error, or nil.
func (e *Expander) Err() error {
	return e.err
}

// ClearErr forgets the recorded error.
func (e *Expander) ClearErr() {
	e.err = nil
}

func (e *Expander) fail(op string, err error) {
	e.err = err
	if core.IsDebugEnabled() {
		core.DebugPrintln("[MCP23017] " + op + ": " + err.Error())
	}
}

// PinToPort implements core.Platform.
func (e *Expander) PinToPort(pin core.Pin) core.Port {
	switch {
	case pin < 8:
		return PortA
	case pin < NumPins:
		return PortB
	}
	return core.NotAPort
}

// PinToBitMask implements core.Platform.
func (e *Expander) PinToBitMask(pin core.Pin) core.Mask {
	return core.Mask(1 << (pin % 8))
}

// PinToTimer implements core.Platform. The chip has no timers.
func (e *Expander) PinToTimer(pin core.Pin) core.TimerID {
	return core.NotOnTimer
}

// PinToInterrupt implements core.Platform. INTA/INTB are not routed.
func (e *Expander) PinToInterrupt(pin core.Pin) core.InterruptID {
	return core.NotAnInterrupt
}

// PinHasPWM implements core.Platform.
func (e *Expander) PinHasPWM(pin core.Pin) bool {
	return false
}

// PortModeRegister implements core.Platform.
func (e *Expander) PortModeRegister(port core.Port) core.Register {
	return &e.views[port-1].mode
}

// PortInputRegister implements core.Platform.
func (e *Expander) PortInputRegister(port core.Port) core.Register {
	return &e.views[port-1].input
}

// PortOutputRegister implements core.Platform.
func (e *Expander) PortOutputRegister(port core.Port) core.Register {
	return &e.views[port-1].output
}

// direction returns the IODIR-inverted direction bits of all pins.
func (e *Expander) direction() mcp23017.Pins {
	var out mcp23017.Pins
	for i, m := range e.modes {
		if m&mcp23017.Direction == mcp23017.Output {
			out.High(i)
		}
	}
	return out
}

func (e *Expander) setDirection(mask mcp23017.Pins, output bool) {
	changed := false
	for i := range e.modes {
		if !mask.Get(i) {
			continue
		}
		m := e.modes[i] &^ mcp23017.Direction
		if output {
			m |= mcp23017.Output
		}
		changed = changed || m != e.modes[i]
		e.modes[i] = m
	}
	if changed {
		e.syncModes("IODIR")
	}
}

func (e *Expander) readLatch() (mcp23017.Pins, error) {
	var buf [2]byte
	if err := e.bus.Tx(uint16(e.addr), []byte{regOLAT}, buf[:]); err != nil {
		return 0, err
	}
	return mcp23017.Pins(buf[0]) | mcp23017.Pins(buf[1])<<8, nil
}

func (e *Expander) writeLatch(pins mcp23017.Pins) error {
	buf := [3]byte{regOLAT, uint8(pins), uint8(pins >> 8)}
	return e.bus.Tx(uint16(e.addr), buf[:], nil)
}

// setOutput updates the latch and, for input pins, the pull-ups.
func (e *Expander) setOutput(mask mcp23017.Pins, high bool) {
	latch := e.latch &^ mask
	if high {
		latch |= mask
	}
	if latch != e.latch {
		if err := e.writeLatch(latch); err != nil {
			e.fail("OLAT", err)
			return
		}
		e.latch = latch
	}

	changed := false
	for i := range e.modes {
		if !mask.Get(i) {
			continue
		}
		m := e.modes[i] &^ mcp23017.Pullup
		if high {
			m |= mcp23017.Pullup
		}
		changed = changed || m != e.modes[i]
		e.modes[i] = m
	}
	if changed {
		e.syncModes("GPPU")
	}
}

func (e *Expander) syncModes(reg string) {
	if err := e.dev.SetModes(e.modes[:]); err != nil {
		e.fail(reg, err)
	}
}

func (e *Expander) levels() mcp23017.Pins {
	pins, err := e.dev.GetPins()
	if err != nil {
		e.fail("GPIO", err)
		return 0
	}
	return pins
}

type viewKind uint8

const (
	kindMode viewKind = iota
	kindInput
	kindOutput
)

// view is one 8-bit register of one port.
type view struct {
	e     *Expander
	kind  viewKind
	shift uint8
}

func (v *view) Get() uint8 {
	var all mcp23017.Pins
	switch v.kind {
	case kindMode:
		all = v.e.direction()
	case kindInput:
		all = v.e.levels()
	case kindOutput:
		all = v.e.latch
	}
	return uint8(all >> v.shift)
}

func (v *view) HasBits(mask uint8) bool {
	return v.Get()&mask != 0
}

func (v *view) SetBits(mask uint8) {
	v.write(mask, true)
}

func (v *view) ClearBits(mask uint8) {
	v.write(mask, false)
}

func (v *view) write(mask uint8, set bool) {
	if mask == 0 {
		return
	}
	pins := mcp23017.Pins(mask) << v.shift
	switch v.kind {
	case kindMode:
		v.e.setDirection(pins, set)
	case kindOutput:
		v.e.setOutput(pins, set)
	}
}
