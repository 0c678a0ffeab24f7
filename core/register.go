package core

// Mask selects bits within an 8-bit port register. A pin's mask has exactly
// one bit set; the mask of an unmapped pin is 0.
type Mask uint8

// Register is a byte-wide hardware register shared by every pin of a port.
//
// Only masked operations are offered. There is no way to store a
// whole byte, so a pin can never clobber the bits of its siblings.
// TinyGo's *volatile.Register8 implements this interface.
type Register interface {
	// Get returns the current register value.
	Get() uint8

	// HasBits reports whether any of the bits in mask are set.
	HasBits(mask uint8) bool

	// SetBits performs register |= mask.
	SetBits(mask uint8)

	// ClearBits performs register &^= mask.
	ClearBits(mask uint8)
}

// Cell is a software-only register. It backs the fallback registers handed
// to unmapped pins and simulated I/O space on host builds.
type Cell struct {
	Reg uint8
}

// Get returns the cell value.
func (c *Cell) Get() uint8 {
	return c.Reg
}

// HasBits reports whether any of the bits in mask are set.
func (c *Cell) HasBits(mask uint8) bool {
	return c.Reg&mask != 0
}

// SetBits sets the bits in mask.
func (c *Cell) SetBits(mask uint8) {
	c.Reg |= mask
}

// ClearBits clears the bits in mask.
func (c *Cell) ClearBits(mask uint8) {
	c.Reg &^= mask
}

// Reset zeroes the cell.
func (c *Cell) Reset() {
	c.Reg = 0
}
