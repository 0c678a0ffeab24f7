//go:build tinygo

package core

import "runtime/interrupt"

// Critical runs fn with interrupts disabled and restores the previous
// interrupt state afterwards.
//
// DigitalPin never calls it. Code that shares a port with an interrupt
// handler wraps its pin operations in it, e.g. to make the two register
// updates of Setup appear atomic to the handler.
func Critical(fn func()) {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	fn()
}
