package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fastio/config"
	"fastio/core"
	"fastio/host/monitor"
	"fastio/host/serial"
	"fastio/targets/avr"
)

var (
	device     = flag.String("device", "", "Serial device path; prints the pin table when empty")
	baud       = flag.Int("baud", 9600, "Baud rate")
	board      = flag.String("board", "", "Board name (atmega328p, atmega2560)")
	configFile = flag.String("config", "", "JSON pin configuration")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tables, err := cfg.Tables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *device == "" {
		printPins(cfg, tables)
		return
	}

	scfg := serial.DefaultConfig(*device)
	scfg.Baud = *baud
	port, err := serial.Open(scfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Monitoring %s (%s)...\n", *device, tables.Name)
	if err := monitorPort(port, os.Stdout, tables); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *device, err)
		os.Exit(1)
	}
}

// monitorPort annotates port onto w and closes port before returning.
func monitorPort(port io.ReadCloser, w io.Writer, tables *avr.Tables) error {
	err := monitor.Run(port, w, tables)
	if cerr := port.Close(); err == nil {
		err = cerr
	}
	return err
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			return nil, err
		}
		if cfg, err = config.Load(data); err != nil {
			return nil, err
		}
	}
	if *board != "" {
		cfg.Board = *board
	}
	return cfg, nil
}

// printPins lists every pin of the board, marking the configured names.
func printPins(cfg *config.Config, tables *avr.Tables) {
	names := make(map[core.Pin]string)
	for name := range cfg.Pins {
		names[cfg.Pin(name)] = name
	}

	r := core.NewResolver(avr.NewBoard(tables, avr.NewSim()))
	fmt.Printf("%s: %d pins\n", tables.Name, len(tables.PinPort))
	fmt.Println("PIN  PORT   BIT  TIMER  INT  PWM  NAME")
	for i := range tables.PinPort {
		pin := core.Pin(i)
		intr := "-"
		if id := r.Interrupt(pin); id != core.NotAnInterrupt {
			intr = core.Itoa(int(id))
		}
		timer := "-"
		if id := r.Timer(pin); id != core.NotOnTimer {
			timer = core.Itoa(int(id))
		}
		fmt.Printf("%-4d %-6s %-4d %-6s %-4s %-4v %s\n",
			pin, monitor.PortName(r.Port(pin)), tables.PinBit[i],
			timer, intr, r.HasPWM(pin), names[pin])
	}
}
