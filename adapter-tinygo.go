//go:build tinygo

package bitbang

import (
	"machine"
	"time"
)

// tinygoOut wraps a machine.Pin configured as output.
type tinygoOut struct {
	pin machine.Pin
}

func (p *tinygoOut) High() { p.pin.High() }
func (p *tinygoOut) Low()  { p.pin.Low() }

// tinygoIn wraps a machine.Pin configured as input.
type tinygoIn struct {
	pin machine.Pin
}

func (p *tinygoIn) Read() Level {
	return Level(p.pin.Get())
}

// tinygoLine emulates an open-drain line: Low drives the pin, High
// switches it back to a pulled-up input.
type tinygoLine struct {
	pin machine.Pin
}

func (p *tinygoLine) Low() {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.pin.Low()
}

func (p *tinygoLine) High() {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
}

func (p *tinygoLine) Read() Level {
	return Level(p.pin.Get())
}

// Config holds the configuration for a bit-banged SPI bus on TinyGo.
type Config struct {
	BusConfig
	SCKPin  machine.Pin
	MOSIPin machine.Pin
	MISOPin machine.Pin
	// CSPin is the slave-select pin.
	// Required: the zero value is machine.Pin(0), a real pin that would be
	// driven as select. Set machine.NoPin when bytes need no bracketing.
	CSPin machine.Pin
}

// OneWireConfig holds the configuration for a bit-banged 1-Wire bus on TinyGo.
type OneWireConfig struct {
	BusConfig
	DataPin machine.Pin
}

// OpenSPI configures the pins and creates a bit-banged SPI master.
func OpenSPI(c Config) (*SPI, error) {
	c.SCKPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	c.MOSIPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	c.MISOPin.Configure(machine.PinConfig{Mode: machine.PinInput})
	c.SCKPin.Low()

	pins := spiPins{
		SCK:  &tinygoOut{pin: c.SCKPin},
		MOSI: &tinygoOut{pin: c.MOSIPin},
		MISO: &tinygoIn{pin: c.MISOPin},
	}
	if c.CSPin != machine.NoPin {
		c.CSPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		c.CSPin.High()
		pins.SS = &tinygoOut{pin: c.CSPin}
	}
	return newSPI(c.BusConfig, pins, time.Sleep)
}

// OpenOneWire creates a bit-banged 1-Wire master on the data pin.
func OpenOneWire(c OneWireConfig) (*OneWire, error) {
	line := &tinygoLine{pin: c.DataPin}
	line.High()
	return newOneWire(c.BusConfig, line, sleepMicros)
}

func sleepMicros(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}
