package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastio/core"
	"fastio/targets/atmega328p"
	"fastio/targets/avr"
)

const unoConfig = `{
	"board": "atmega328p",
	"pins": {
		"led":    {"pin": 13, "mode": "output", "initial": true},
		"button": {"pin": 2, "mode": "input_pullup"},
		"sensor": {"pin": 7},
		"spare":  {}
	}
}`

func TestLoad(t *testing.T) {
	c, err := Load([]byte(unoConfig))
	require.NoError(t, err)

	assert.Equal(t, "atmega328p", c.Board)
	assert.Equal(t, atmega328p.LED, c.Pin("led"))
	assert.Equal(t, core.Pin(2), c.Pin("button"))
	assert.Equal(t, "input", c.Pins["sensor"].Mode)
	assert.Equal(t, core.NoPin, c.Pin("spare"))
	assert.Equal(t, core.NoPin, c.Pin("missing"))
	assert.True(t, c.Pins["led"].Initial)
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "atmega328p", c.Board)
	assert.NotNil(t, c.Pins)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		json string
		err  error
	}{
		{"bad mode", `{"pins": {"a": {"pin": 1, "mode": "analog"}}}`, ErrMode},
		{"negative pin", `{"pins": {"a": {"pin": -1}}}`, ErrPinRange},
		{"pin too large", `{"pins": {"a": {"pin": 256}}}`, ErrPinRange},
		{"duplicate", `{"pins": {"a": {"pin": 4}, "b": {"pin": 4}}}`, ErrDuplicate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.json))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := Load([]byte(`{"pins": [`))
	assert.Error(t, err)
}

func TestUnmappedPinsMayRepeat(t *testing.T) {
	_, err := Load([]byte(`{"pins": {"a": {"pin": 255}, "b": {}}}`))
	assert.NoError(t, err)
}

func TestParseMode(t *testing.T) {
	for _, m := range []core.PinMode{core.PinInput, core.PinOutput, core.PinInputPullup} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("OUTPUT")
	assert.ErrorIs(t, err, ErrMode)
}

func TestApply(t *testing.T) {
	c, err := Load([]byte(unoConfig))
	require.NoError(t, err)

	sim := avr.NewSim()
	board, err := c.Platform(sim)
	require.NoError(t, err)
	r := core.NewResolver(board)

	pins, err := c.Apply(r)
	require.NoError(t, err)
	require.Len(t, pins, 4)

	assert.True(t, pins["led"].IsOutput())
	assert.True(t, pins["led"].Get())
	assert.Equal(t, uint8(0x20), sim.Byte(atmega328p.PINB+2))

	assert.False(t, pins["button"].IsOutput())
	assert.True(t, pins["button"].Get())

	assert.False(t, pins["sensor"].Get())
	assert.Equal(t, core.NoPin, pins["spare"].Pin())
}

func TestPlatform(t *testing.T) {
	c := &Config{Board: "atmega2560"}
	b, err := c.Platform(avr.NewSim())
	require.NoError(t, err)
	assert.Equal(t, "atmega2560", b.Name())

	c.Board = "esp32"
	_, err = c.Platform(avr.NewSim())
	assert.ErrorIs(t, err, ErrBoard)
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, atmega328p.LED, c.Pin("led"))

	sim := avr.NewSim()
	b, err := c.Platform(sim)
	require.NoError(t, err)
	pins, err := c.Apply(core.NewResolver(b))
	require.NoError(t, err)
	assert.True(t, pins["led"].IsOutput())
	assert.False(t, pins["led"].Get())
}

func TestApplyInvalidPinsStayInert(t *testing.T) {
	c := DefaultConfig()
	big := 300
	c.Pins["led"] = PinConfig{Pin: c.Pins["led"].Pin, Mode: "out"}
	c.Pins["far"] = PinConfig{Pin: &big, Mode: "output"}

	sim := avr.NewSim()
	b, err := c.Platform(sim)
	require.NoError(t, err)
	before := sim.Snapshot()

	pins, err := c.Apply(core.NewResolver(b))
	assert.ErrorIs(t, err, ErrMode)
	assert.ErrorIs(t, err, ErrPinRange)

	for _, name := range []string{"led", "far"} {
		pin, ok := pins[name]
		require.True(t, ok, name)
		assert.Equal(t, core.NoPin, pin.Pin())

		pin.Setup(core.PinOutput)
		pin.High()
		assert.False(t, pin.Get())
	}
	assert.Equal(t, before, sim.Snapshot())
	assert.Equal(t, core.NoPin, c.Pins["far"].Number())
}
