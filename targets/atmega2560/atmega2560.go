// Package atmega2560 holds the pin tables of the ATmega2560 as wired on the
// Arduino Mega 2560. Ports H to L sit in extended I/O space, above 0xFF.
package atmega2560

import (
	"fastio/core"
	"fastio/targets/avr"
)

// Data-space addresses of PINx. DDRx and PORTx follow.
const (
	PINA = 0x20
	PINB = 0x23
	PINC = 0x26
	PIND = 0x29
	PINE = 0x2C
	PINF = 0x2F
	PING = 0x32
	PINH = 0x100
	PINJ = 0x103
	PINK = 0x106
	PINL = 0x109
)

// Named pins
const (
	A0  core.Pin = 54
	A8  core.Pin = 62
	A15 core.Pin = 69
	LED core.Pin = 13
)

// NumPins is the number of logical pins.
const NumPins = 70

const (
	pa = avr.PA
	pb = avr.PB
	pc = avr.PC
	pd = avr.PD
	pe = avr.PE
	pf = avr.PF
	pg = avr.PG
	ph = avr.PH
	pj = avr.PJ
	pk = avr.PK
	pl = avr.PL
)

// Tables is the pin mapping of the part.
var Tables = avr.Tables{
	Name: "atmega2560",

	PortAddr: []uint16{
		avr.PA: PINA,
		avr.PB: PINB,
		avr.PC: PINC,
		avr.PD: PIND,
		avr.PE: PINE,
		avr.PF: PINF,
		avr.PG: PING,
		avr.PH: PINH,
		avr.PJ: PINJ,
		avr.PK: PINK,
		avr.PL: PINL,
	},

	PinPort: []core.Port{
		pe, pe, pe, pe, pg, pe, ph, ph, ph, ph, // 0-9
		pb, pb, pb, pb, pj, pj, ph, ph, pd, pd, // 10-19
		pd, pd, pa, pa, pa, pa, pa, pa, pa, pa, // 20-29
		pc, pc, pc, pc, pc, pc, pc, pc, pd, pg, // 30-39
		pg, pg, pl, pl, pl, pl, pl, pl, pl, pl, // 40-49
		pb, pb, pb, pb, pf, pf, pf, pf, pf, pf, // 50-59
		pf, pf, pk, pk, pk, pk, pk, pk, pk, pk, // 60-69
	},

	PinBit: []uint8{
		0, 1, 4, 5, 5, 3, 3, 4, 5, 6,
		4, 5, 6, 7, 1, 0, 1, 0, 3, 2,
		1, 0, 0, 1, 2, 3, 4, 5, 6, 7,
		7, 6, 5, 4, 3, 2, 1, 0, 7, 2,
		1, 0, 7, 6, 5, 4, 3, 2, 1, 0,
		3, 2, 1, 0, 0, 1, 2, 3, 4, 5,
		6, 7, 0, 1, 2, 3, 4, 5, 6, 7,
	},

	PinTimer: []core.TimerID{
		2:  avr.TIMER3B,
		3:  avr.TIMER3C,
		4:  avr.TIMER0B,
		5:  avr.TIMER3A,
		6:  avr.TIMER4A,
		7:  avr.TIMER4B,
		8:  avr.TIMER4C,
		9:  avr.TIMER2B,
		10: avr.TIMER2A,
		11: avr.TIMER1A,
		12: avr.TIMER1B,
		13: avr.TIMER0A,
		44: avr.TIMER5C,
		45: avr.TIMER5B,
		46: avr.TIMER5A,
	},

	Interrupt: func(pin core.Pin) core.InterruptID {
		switch {
		case pin == 2:
			return 0
		case pin == 3:
			return 1
		case pin >= 18 && pin <= 21:
			return core.InterruptID(23 - pin)
		}
		return core.NotAnInterrupt
	},

	PWM: func(pin core.Pin) bool {
		return (pin >= 2 && pin <= 13) || (pin >= 44 && pin <= 46)
	},
}

// New binds the tables to io.
func New(io avr.IOSpace) *avr.Board {
	return avr.NewBoard(&Tables, io)
}

// Configure installs the part as the default platform of package core.
func Configure() *avr.Board {
	b := New(avr.Default())
	core.SetPlatform(b)
	return b
}
