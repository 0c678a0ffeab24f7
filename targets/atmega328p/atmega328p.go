// Package atmega328p holds the pin tables of the ATmega328P as wired on the
// Arduino Uno and Nano: D0-D7 on PORTD, D8-D13 on PORTB, A0-A5 (pins 14-19)
// on PORTC.
package atmega328p

import (
	"fastio/core"
	"fastio/targets/avr"
)

// Data-space addresses of PINx. DDRx and PORTx follow.
const (
	PINB = 0x23
	PINC = 0x26
	PIND = 0x29
)

// Named pins
const (
	A0  core.Pin = 14
	A1  core.Pin = 15
	A2  core.Pin = 16
	A3  core.Pin = 17
	A4  core.Pin = 18
	A5  core.Pin = 19
	LED core.Pin = 13
)

// NumPins is the number of logical pins.
const NumPins = 20

const (
	pb = avr.PB
	pc = avr.PC
	pd = avr.PD
)

// Tables is the pin mapping of the part.
var Tables = avr.Tables{
	Name: "atmega328p",

	PortAddr: []uint16{
		avr.PB: PINB,
		avr.PC: PINC,
		avr.PD: PIND,
	},

	PinPort: []core.Port{
		pd, pd, pd, pd, pd, pd, pd, pd, // 0-7
		pb, pb, pb, pb, pb, pb, // 8-13
		pc, pc, pc, pc, pc, pc, // 14-19
	},

	PinBit: []uint8{
		0, 1, 2, 3, 4, 5, 6, 7,
		0, 1, 2, 3, 4, 5,
		0, 1, 2, 3, 4, 5,
	},

	PinTimer: []core.TimerID{
		3:  avr.TIMER2B,
		5:  avr.TIMER0B,
		6:  avr.TIMER0A,
		9:  avr.TIMER1A,
		10: avr.TIMER1B,
		11: avr.TIMER2A,
	},

	Interrupt: func(pin core.Pin) core.InterruptID {
		switch pin {
		case 2:
			return 0
		case 3:
			return 1
		}
		return core.NotAnInterrupt
	},

	PWM: func(pin core.Pin) bool {
		return pin == 3 || pin == 5 || pin == 6 || pin == 9 || pin == 10 || pin == 11
	},
}

// New binds the tables to io.
func New(io avr.IOSpace) *avr.Board {
	return avr.NewBoard(&Tables, io)
}

// Configure installs the part as the default platform of package core,
// using the registers of the running chip (or the simulator on host builds).
func Configure() *avr.Board {
	b := New(avr.Default())
	core.SetPlatform(b)
	return b
}
