package bitbang

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// BusConfig holds the platform independent settings of a bus opened on real
// hardware.
type BusConfig struct {
	// Frequency bounds the SPI clock.
	// Defaults to 100kHz if not provided.
	Frequency physic.Frequency
	// Debug reports every output transition through the package logger.
	// Defaults to false.
	Debug bool
}

const defaultFrequency = 100 * physic.KiloHertz

// spiPins are the lines of an SPI bus once the platform adapter opened them.
type spiPins struct {
	SCK, MOSI Output
	MISO      Input
	// SS is nil when no select line is wired.
	SS Output
}

// newSPI applies defaults and debug tracing, then builds the engine.
func newSPI(c BusConfig, p spiPins, sleep func(time.Duration)) (*SPI, error) {
	if c.Frequency == 0 {
		c.Frequency = defaultFrequency
	}
	sc := SPIConfig{
		SCK:       SelectOutput(c.Debug, "SCK", p.SCK),
		MOSI:      SelectOutput(c.Debug, "MOSI", p.MOSI),
		MISO:      p.MISO,
		Frequency: c.Frequency,
		Sleep:     sleep,
	}
	if p.SS != nil {
		sc.SS = SelectOutput(c.Debug, "SS", p.SS)
	}
	s, err := NewSPI(sc)
	if err != nil {
		return nil, err
	}
	globalLogger.Info("Bit-banged SPI ready: " + s.String())
	return s, nil
}

// tracedLine traces the output half of a Line.
type tracedLine struct {
	TracedOutput
	Input
}

// newOneWire applies debug tracing, then builds the engine.
func newOneWire(c BusConfig, w Line, sleep func(us uint32)) (*OneWire, error) {
	if c.Debug && w != nil {
		w = tracedLine{TracedOutput{Name: "W1", Out: w}, w}
	}
	o, err := NewOneWire(w, sleep)
	if err != nil {
		return nil, err
	}
	globalLogger.Info("Bit-banged 1-Wire ready: " + o.String())
	return o, nil
}
