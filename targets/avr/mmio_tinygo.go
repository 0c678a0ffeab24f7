//go:build tinygo && avr

package avr

import (
	"fastio/core"
	"runtime/volatile"
	"unsafe"
)

// MMIO is the real data space of the running AVR.
type MMIO struct{}

// PortRegisters implements IOSpace.
func (MMIO) PortRegisters(pinx uint16) (ddr, pin, port core.Register) {
	pin = (*volatile.Register8)(unsafe.Pointer(uintptr(pinx)))
	ddr = (*volatile.Register8)(unsafe.Pointer(uintptr(pinx + 1)))
	port = (*volatile.Register8)(unsafe.Pointer(uintptr(pinx + 2)))
	return ddr, pin, port
}

// Default returns the I/O space of the running chip.
func Default() IOSpace {
	return MMIO{}
}
