// Package monitor decodes the debug log a fastio firmware prints and
// annotates pin events with the register addresses of the board.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fastio/core"
	"fastio/targets/avr"
)

// Event is one tagged debug line, e.g. "[PIN] pin=13 port=2 mask=0x20".
type Event struct {
	Tag      string
	Pin      core.Pin
	Port     core.Port
	Mask     core.Mask
	Unmapped bool
	Text     string // everything after the tag
}

// ParseLine decodes a tagged line. Untagged lines return false.
func ParseLine(line string) (Event, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") {
		return Event{}, false
	}
	end := strings.IndexByte(line, ']')
	if end < 2 {
		return Event{}, false
	}
	ev := Event{
		Tag:  line[1:end],
		Text: strings.TrimSpace(line[end+1:]),
	}
	if ev.Tag != "PIN" {
		return ev, true
	}

	for _, field := range strings.Fields(ev.Text) {
		if field == "unmapped" {
			ev.Unmapped = true
			continue
		}
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			continue
		}
		switch key {
		case "pin":
			ev.Pin = core.Pin(n)
		case "port":
			ev.Port = core.Port(n)
		case "mask":
			ev.Mask = core.Mask(n)
		}
	}
	return ev, true
}

// PortName returns "PORTB" for avr.PB.
func PortName(port core.Port) string {
	if port == core.NotAPort || port > avr.PL {
		return "PORT?"
	}
	return "PORT" + string(rune('A'+port-1))
}

func bitOf(mask core.Mask) int {
	for i := 0; i < 8; i++ {
		if mask == 1<<i {
			return i
		}
	}
	return -1
}

// Annotate renders ev for a human, checking PIN events against t.
func Annotate(ev Event, t *avr.Tables) string {
	if ev.Tag != "PIN" {
		return ev.Tag + ": " + ev.Text
	}
	if ev.Unmapped {
		return fmt.Sprintf("pin %d: unmapped, operations are no-ops", ev.Pin)
	}

	out := fmt.Sprintf("pin %d: %s bit %d", ev.Pin, PortName(ev.Port), bitOf(ev.Mask))
	if int(ev.Port) < len(t.PortAddr) && t.PortAddr[ev.Port] != 0 {
		addr := t.PortAddr[ev.Port]
		out += fmt.Sprintf(" (PIN 0x%02x, DDR 0x%02x, PORT 0x%02x)", addr, addr+1, addr+2)
	}
	if int(ev.Pin) >= len(t.PinPort) ||
		t.PinPort[ev.Pin] != ev.Port || 1<<t.PinBit[ev.Pin] != uint8(ev.Mask) {
		out += " [does not match " + t.Name + "]"
	}
	return out
}

// Run copies r to w line by line, replacing tagged lines with their
// annotation. It returns when r is exhausted.
func Run(r io.Reader, w io.Writer, t *avr.Tables) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if ev, ok := ParseLine(line); ok {
			line = Annotate(ev, t)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return sc.Err()
}
