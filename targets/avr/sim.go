//go:build !(tinygo && avr)

package avr

import "fastio/core"

// SimSize covers the I/O and extended I/O space of every supported part.
const SimSize = 0x200

// Sim is a simulated AVR data space for host builds.
//
// Ports behave like the real pin logic: a PINx bit reads the PORTx latch for
// output pins, the externally driven level for driven input pins, and the
// pull-up (the PORTx bit) for undriven input pins. Output pins therefore read
// back what was written. Writing ones to PINx toggles PORTx.
type Sim struct {
	mem    [SimSize]core.Cell
	driven [SimSize]uint8 // per PINx address: externally driven bits
	level  [SimSize]uint8 // per PINx address: driven levels
}

// NewSim returns a zeroed data space, i.e. every port as after reset.
func NewSim() *Sim {
	return &Sim{}
}

// PortRegisters implements IOSpace.
func (s *Sim) PortRegisters(pinx uint16) (ddr, pin, port core.Register) {
	return &s.mem[pinx+1], &simPin{sim: s, addr: pinx}, &s.mem[pinx+2]
}

// Byte returns the raw value stored at addr.
func (s *Sim) Byte(addr uint16) uint8 {
	return s.mem[addr].Reg
}

// Poke stores value at addr. Tests use it to preload register state.
func (s *Sim) Poke(addr uint16, value uint8) {
	s.mem[addr].Reg = value
}

// Drive applies external levels to the bits of mask on the port whose PINx
// register is at pinx.
func (s *Sim) Drive(pinx uint16, mask, levels uint8) {
	s.driven[pinx] |= mask
	s.level[pinx] = s.level[pinx]&^mask | levels&mask
}

// Release stops driving the bits of mask.
func (s *Sim) Release(pinx uint16, mask uint8) {
	s.driven[pinx] &^= mask
}

// Snapshot returns a copy of the stored register values.
func (s *Sim) Snapshot() [SimSize]uint8 {
	var out [SimSize]uint8
	for i := range s.mem {
		out[i] = s.mem[i].Reg
	}
	return out
}

// Reset returns every register and external level to zero.
func (s *Sim) Reset() {
	*s = Sim{}
}

// simPin is the PINx register of a simulated port.
type simPin struct {
	sim  *Sim
	addr uint16
}

func (p *simPin) Get() uint8 {
	s := p.sim
	ddr := s.mem[p.addr+1].Reg
	latch := s.mem[p.addr+2].Reg
	driven := s.driven[p.addr] &^ ddr
	return latch&ddr | s.level[p.addr]&driven | latch&^ddr&^driven
}

func (p *simPin) HasBits(mask uint8) bool {
	return p.Get()&mask != 0
}

// SetBits toggles the PORTx bits in mask.
func (p *simPin) SetBits(mask uint8) {
	p.sim.mem[p.addr+2].Reg ^= mask
}

// ClearBits has no effect: writing zeros to PINx is ignored by the hardware.
func (p *simPin) ClearBits(mask uint8) {}

var defaultSim = NewSim()

// Default returns the process-wide simulated data space.
func Default() IOSpace {
	return defaultSim
}
