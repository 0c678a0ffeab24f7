//go:build !tinygo

package core

// Critical runs fn. Host builds have no interrupts to mask.
func Critical(fn func()) {
	fn()
}
