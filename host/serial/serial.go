// Package serial opens the UART a fastio firmware prints its debug log on.
package serial

import (
	"errors"
	"io"
)

// Port is an open serial line.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate; TinyGo's AVR UART defaults to 9600
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

var ErrNoDevice = errors.New("serial: no device")

// DefaultConfig returns the settings of a TinyGo AVR console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   9600,
	}
}
