// Package bitbang defines generic pin capabilities and software (bit-banged)
// implementations of SPI and 1-Wire built purely on top of them.
//
// Device drivers hold one of the engines; engines hold pins; hardware
// controllers or test doubles implement the pins.
package bitbang

// Level represents the logical level of a pin (Low or High).
type Level bool

const (
	Low  Level = false
	High Level = true
)

// LevelOf converts a boolean write intent into a Level.
func LevelOf(b bool) Level {
	return Level(b)
}

// LevelFromByte returns Low for 0 and High for any other value.
func LevelFromByte(b byte) Level {
	return b != 0
}

// Byte returns 1 for High and 0 for Low.
func (l Level) Byte() byte {
	if l {
		return 1
	}
	return 0
}

// Not returns the opposite level.
func (l Level) Not() Level {
	return !l
}

func (l Level) String() string {
	if l {
		return "High"
	}
	return "Low"
}

// Output is a line that can be driven high or low.
// Both operations are assumed infallible at this layer.
type Output interface {
	High()
	Low()
}

// Input is a line that can be sampled. Every call reads the line again;
// nothing is cached.
type Input interface {
	Read() Level
}

// Line is a bidirectional line, such as a 1-Wire data wire.
type Line interface {
	Output
	Input
}

// Write drives o to l.
func Write(o Output, l Level) {
	if l == High {
		o.High()
	} else {
		o.Low()
	}
}
