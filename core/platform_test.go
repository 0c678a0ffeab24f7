package core

// testPlatform is a two-port board: pins 0-7 on port 1, pins 8-15 on port 2.
// Pin 3 has timer 1 and PWM, pins 2 and 3 have interrupts 0 and 1.
type testPlatform struct {
	mode   [3]Cell
	input  [3]Cell
	output [3]Cell

	// loopback makes the input registers read back the output latches
	loopback bool
	// nilPort makes every register lookup for that port return nil
	nilPort Port
}

func (p *testPlatform) PinToPort(pin Pin) Port {
	switch {
	case pin < 8:
		return 1
	case pin < 16:
		return 2
	}
	return NotAPort
}

func (p *testPlatform) PinToBitMask(pin Pin) Mask {
	return Mask(1 << (pin % 8))
}

func (p *testPlatform) PinToTimer(pin Pin) TimerID {
	if pin == 3 {
		return 1
	}
	return NotOnTimer
}

func (p *testPlatform) PinToInterrupt(pin Pin) InterruptID {
	switch pin {
	case 2:
		return 0
	case 3:
		return 1
	}
	return NotAnInterrupt
}

func (p *testPlatform) PinHasPWM(pin Pin) bool {
	return pin == 3
}

func (p *testPlatform) PortModeRegister(port Port) Register {
	if port == p.nilPort {
		return nil
	}
	return &p.mode[port]
}

func (p *testPlatform) PortInputRegister(port Port) Register {
	if port == p.nilPort {
		return nil
	}
	if p.loopback {
		return mirror{&p.output[port]}
	}
	return &p.input[port]
}

func (p *testPlatform) PortOutputRegister(port Port) Register {
	if port == p.nilPort {
		return nil
	}
	return &p.output[port]
}

// mirror is an input register wired to an output latch.
type mirror struct {
	latch *Cell
}

func (m mirror) Get() uint8              { return m.latch.Get() }
func (m mirror) HasBits(mask uint8) bool { return m.latch.HasBits(mask) }
func (m mirror) SetBits(mask uint8)      {}
func (m mirror) ClearBits(mask uint8)    {}

// snapshot returns every hardware register byte of the platform.
func (p *testPlatform) snapshot() [9]uint8 {
	var s [9]uint8
	for i := 0; i < 3; i++ {
		s[i] = p.mode[i].Reg
		s[3+i] = p.input[i].Reg
		s[6+i] = p.output[i].Reg
	}
	return s
}
