package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fastio/targets/atmega328p"
)

type fakePort struct {
	io.Reader
	closed   int
	closeErr error
}

func (p *fakePort) Close() error {
	p.closed++
	return p.closeErr
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestMonitorPortClosesPort(t *testing.T) {
	var out strings.Builder
	port := &fakePort{Reader: strings.NewReader("[PIN] pin=13 port=2 mask=0x20\n")}
	assert.NoError(t, monitorPort(port, &out, &atmega328p.Tables))
	assert.Equal(t, 1, port.closed)
	assert.Contains(t, out.String(), "PORTB bit 5")

	// a failed run still releases the port
	port = &fakePort{Reader: strings.NewReader("boot\n")}
	assert.EqualError(t, monitorPort(port, failWriter{}, &atmega328p.Tables), "broken pipe")
	assert.Equal(t, 1, port.closed)

	closeErr := errors.New("close failed")
	port = &fakePort{Reader: strings.NewReader(""), closeErr: closeErr}
	assert.ErrorIs(t, monitorPort(port, &out, &atmega328p.Tables), closeErr)
}
