//go:build !tinygo

package bitbang

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/cpu"
)

// periphOut wraps a gpio.PinOut to satisfy Output. Driver errors are logged
// and dropped, keeping the capability infallible.
type periphOut struct {
	gpio.PinOut
}

func (p *periphOut) High() { p.out(gpio.High) }
func (p *periphOut) Low()  { p.out(gpio.Low) }

func (p *periphOut) out(l gpio.Level) {
	if err := p.PinOut.Out(l); err != nil {
		globalLogger.Warn("Failed to drive " + p.PinOut.String() + ": " + err.Error())
	}
}

// periphIn wraps a gpio.PinIn to satisfy Input.
type periphIn struct {
	gpio.PinIn
}

func (p *periphIn) Read() Level {
	return Level(p.PinIn.Read())
}

// periphLine emulates an open-drain line on a gpio.PinIO: Low drives the
// pin, High releases it to the pull-up.
type periphLine struct {
	gpio.PinIO
}

func (p *periphLine) Low() {
	if err := p.PinIO.Out(gpio.Low); err != nil {
		globalLogger.Warn("Failed to pull " + p.PinIO.String() + " low: " + err.Error())
	}
}

func (p *periphLine) High() {
	if err := p.PinIO.In(gpio.PullUp, gpio.NoEdge); err != nil {
		globalLogger.Warn("Failed to release " + p.PinIO.String() + ": " + err.Error())
	}
}

func (p *periphLine) Read() Level {
	return Level(p.PinIO.Read())
}

// Config holds the configuration for a bit-banged SPI bus on Linux/periph.io.
type Config struct {
	BusConfig
	// SCKPin is the GPIO pin number (BCM numbering) for the clock.
	// Defaults to 11 if not provided.
	SCKPin int
	// MOSIPin is the GPIO pin number (BCM numbering) for Master Out, Slave In.
	// Defaults to 10 if not provided.
	MOSIPin int
	// MISOPin is the GPIO pin number (BCM numbering) for Master In, Slave Out.
	// Defaults to 9 if not provided.
	MISOPin int
	// CSPin is the GPIO pin number (BCM numbering) for slave-select.
	// Optional. If not provided, bytes are not bracketed.
	CSPin int
}

// OneWireConfig holds the configuration for a bit-banged 1-Wire bus on
// Linux/periph.io.
type OneWireConfig struct {
	BusConfig
	// DataPin is the GPIO pin number (BCM numbering) of the data line.
	// It needs an external pull-up resistor.
	// Defaults to 4 if not provided.
	DataPin int
}

func pinByNumber(n int) (gpio.PinIO, error) {
	name := fmt.Sprintf("GPIO%d", n)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("failed to open pin %s", name)
	}
	return p, nil
}

// OpenSPI initializes periph.io and creates a bit-banged SPI master on the
// configured pins. Settling delays use time.Sleep.
func OpenSPI(c Config) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	if c.SCKPin == 0 {
		c.SCKPin = 11
	}
	if c.MOSIPin == 0 {
		c.MOSIPin = 10
	}
	if c.MISOPin == 0 {
		c.MISOPin = 9
	}

	sck, err := pinByNumber(c.SCKPin)
	if err != nil {
		return nil, err
	}
	mosi, err := pinByNumber(c.MOSIPin)
	if err != nil {
		return nil, err
	}
	miso, err := pinByNumber(c.MISOPin)
	if err != nil {
		return nil, err
	}
	if err := miso.In(gpio.Float, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("failed to set %s as input: %w", miso, err)
	}

	pins := spiPins{
		SCK:  &periphOut{PinOut: sck},
		MOSI: &periphOut{PinOut: mosi},
		MISO: &periphIn{PinIn: miso},
	}
	if c.CSPin != 0 {
		cs, err := pinByNumber(c.CSPin)
		if err != nil {
			return nil, err
		}
		// Deselect before the first byte.
		if err := cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("failed to set %s high: %w", cs, err)
		}
		pins.SS = &periphOut{PinOut: cs}
	}

	return newSPI(c.BusConfig, pins, time.Sleep)
}

// OpenOneWire initializes periph.io and creates a bit-banged 1-Wire master
// on the configured pin. Holds are busy-waited with cpu.Nanospin, as the
// scheduler cannot honour microsecond sleeps.
func OpenOneWire(c OneWireConfig) (*OneWire, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	if c.DataPin == 0 {
		c.DataPin = 4
	}
	p, err := pinByNumber(c.DataPin)
	if err != nil {
		return nil, err
	}
	line := &periphLine{PinIO: p}
	line.High()

	return newOneWire(c.BusConfig, line, spinMicros)
}

func spinMicros(us uint32) {
	cpu.Nanospin(time.Duration(us) * time.Microsecond)
}
