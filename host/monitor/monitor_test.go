package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastio/core"
	"fastio/targets/atmega2560"
	"fastio/targets/atmega328p"
	"fastio/targets/avr"
)

func TestParseLine(t *testing.T) {
	testCases := []struct {
		line string
		ok   bool
		want Event
	}{
		{"[PIN] pin=13 port=2 mask=0x20", true,
			Event{Tag: "PIN", Pin: 13, Port: avr.PB, Mask: 0x20, Text: "pin=13 port=2 mask=0x20"}},
		{"[PIN] pin=255 unmapped\r", true,
			Event{Tag: "PIN", Pin: core.NoPin, Unmapped: true, Text: "pin=255 unmapped"}},
		{"[MCP23017] OLAT: nack", true, Event{Tag: "MCP23017", Text: "OLAT: nack"}},
		{"[PIN] pin=999 port=x", true, Event{Tag: "PIN", Text: "pin=999 port=x"}},
		{"hello", false, Event{}},
		{"[] empty", false, Event{}},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			ev, ok := ParseLine(tc.line)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, ev)
		})
	}
}

func TestPortName(t *testing.T) {
	assert.Equal(t, "PORTB", PortName(avr.PB))
	assert.Equal(t, "PORTH", PortName(avr.PH))
	assert.Equal(t, "PORTL", PortName(avr.PL))
	assert.Equal(t, "PORT?", PortName(core.NotAPort))
}

func TestAnnotate(t *testing.T) {
	ev, _ := ParseLine("[PIN] pin=13 port=2 mask=0x20")
	assert.Equal(t, "pin 13: PORTB bit 5 (PIN 0x23, DDR 0x24, PORT 0x25)",
		Annotate(ev, &atmega328p.Tables))

	// the Mega has its LED on PB7
	assert.Equal(t, "pin 13: PORTB bit 5 (PIN 0x23, DDR 0x24, PORT 0x25) [does not match atmega2560]",
		Annotate(ev, &atmega2560.Tables))

	ev, _ = ParseLine("[PIN] pin=6 port=8 mask=0x08")
	assert.Equal(t, "pin 6: PORTH bit 3 (PIN 0x100, DDR 0x101, PORT 0x102)",
		Annotate(ev, &atmega2560.Tables))

	ev, _ = ParseLine("[PIN] pin=255 unmapped")
	assert.Equal(t, "pin 255: unmapped, operations are no-ops", Annotate(ev, &atmega328p.Tables))
}

func TestRun(t *testing.T) {
	in := strings.Join([]string{
		"boot",
		"[PIN] pin=2 port=4 mask=0x04",
		"[MCP23017] GPIO: nack",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader(in), &out, &atmega328p.Tables))

	assert.Equal(t, "boot\n"+
		"pin 2: PORTD bit 2 (PIN 0x29, DDR 0x2a, PORT 0x2b)\n"+
		"MCP23017: GPIO: nack\n", out.String())
}

// Lines produced by the firmware decode back to the resolver's answers.
func TestDecodesResolverOutput(t *testing.T) {
	var lines []string
	core.SetDebugWriter(func(s string) { lines = append(lines, s) })
	core.SetDebugEnabled(true)
	t.Cleanup(func() {
		core.SetDebugWriter(nil)
		core.SetDebugEnabled(false)
	})

	r := core.NewResolver(atmega2560.New(avr.NewSim()))
	for pin := core.Pin(0); pin < atmega2560.NumPins; pin++ {
		r.DigitalPin(pin)
	}
	require.Len(t, lines, atmega2560.NumPins)

	for i, line := range lines {
		pin := core.Pin(i)
		ev, ok := ParseLine(line)
		require.True(t, ok, line)
		assert.Equal(t, pin, ev.Pin)
		assert.Equal(t, r.Port(pin), ev.Port)
		assert.Equal(t, r.BitMask(pin), ev.Mask)
		assert.NotContains(t, Annotate(ev, &atmega2560.Tables), "does not match")
	}
}
