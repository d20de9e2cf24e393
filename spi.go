package bitbang

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"tinygo.org/x/drivers"
)

var (
	ErrPkg              = errors.New("bitbang")
	ErrUnsupportedMode  = errors.New("only SPI mode 0, MSB first, is supported")
	ErrUnsupportedWidth = errors.New("only 8 bits per word is supported")
)

// SPIMaster is a byte-level SPI master.
type SPIMaster interface {
	// ReadWrite simultaneously writes data and returns the byte read.
	ReadWrite(data byte) byte
}

// SPIConfig describes the lines and timing of a bit-banged SPI bus.
type SPIConfig struct {
	// SCK is the clock line.
	SCK Output
	// MOSI is the Master Out, Slave In line.
	MOSI Output
	// MISO is the Master In, Slave Out line.
	MISO Input
	// SS is the slave-select line, driven low for the duration of each byte.
	// Optional. When nil the byte boundary has no electrical marker.
	SS Output
	// Frequency bounds the clock. A settling delay of half a period follows
	// the data setup and the sample of every bit.
	// Optional. Zero toggles the clock as fast as the pins allow.
	Frequency physic.Frequency
	// Sleep realizes the settling delay.
	// Defaults to time.Sleep if not provided.
	Sleep func(time.Duration)
}

// SPI is a full-duplex, mode 0, MSB first bit-banged SPI master.
//
// Every ReadWrite runs all eight bit cycles to completion. No state survives
// between calls. Timing violations cannot be detected: correctness depends
// on the pins and Sleep honouring the requested delays.
type SPI struct {
	sck, mosi Output
	miso      Input
	ss        Output
	sleep     func(time.Duration)

	// freq is the requested clock, limit the port maximum set by LimitSpeed.
	// Zero means unbounded for both.
	freq, limit physic.Frequency
	half        time.Duration
}

// NewSPI creates a bit-banging SPI master using the given pins.
func NewSPI(c SPIConfig) (*SPI, error) {
	if c.SCK == nil {
		return nil, fmt.Errorf("%w: SCK pin not configured", ErrPkg)
	}
	if c.MOSI == nil {
		return nil, fmt.Errorf("%w: MOSI pin not configured", ErrPkg)
	}
	if c.MISO == nil {
		return nil, fmt.Errorf("%w: MISO pin not configured", ErrPkg)
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
	s := &SPI{
		sck:   c.SCK,
		mosi:  c.MOSI,
		miso:  c.MISO,
		ss:    c.SS,
		sleep: c.Sleep,
		freq:  c.Frequency,
	}
	s.applySpeed()
	return s, nil
}

// applySpeed runs the clock at the lower of freq and limit.
func (s *SPI) applySpeed() {
	f := s.freq
	if s.limit > 0 && (f <= 0 || s.limit < f) {
		f = s.limit
	}
	if f <= 0 {
		s.half = 0
		return
	}
	s.half = f.Period() / 2
}

func (s *SPI) settle() {
	if s.half > 0 {
		s.sleep(s.half)
	}
}

// cycle clocks one bit out on MOSI and samples one bit from MISO.
func (s *SPI) cycle(bit Level) Level {
	s.sck.Low()
	Write(s.mosi, bit)
	s.settle()
	s.sck.High()
	l := s.miso.Read()
	s.settle()
	return l
}

// ReadWrite implements SPIMaster.
func (s *SPI) ReadWrite(data byte) byte {
	if s.ss != nil {
		s.ss.Low()
	}
	r := MSBToByte(ForEachMSB(data, s.cycle))
	if s.ss != nil {
		s.ss.High()
	}
	return r
}

// Transfer implements drivers.SPI.
func (s *SPI) Transfer(b byte) (byte, error) {
	return s.ReadWrite(b), nil
}

// Tx sends w and reads into r, one ReadWrite per byte.
// When r is longer than w the extra bytes are clocked out as zeros.
// It never fails; the error satisfies conn.Conn and drivers.SPI.
func (s *SPI) Tx(w, r []byte) error {
	n := len(w)
	if len(r) > n {
		n = len(r)
	}
	for i := 0; i < n; i++ {
		var out byte
		if i < len(w) {
			out = w[i]
		}
		in := s.ReadWrite(out)
		if i < len(r) {
			r[i] = in
		}
	}
	return nil
}

// TxPackets implements spi.Conn. KeepCS has no effect as the select line
// already brackets every byte.
func (s *SPI) TxPackets(p []spi.Packet) error {
	for i := range p {
		if p[i].BitsPerWord != 0 && p[i].BitsPerWord != 8 {
			return ErrUnsupportedWidth
		}
		if err := s.Tx(p[i].W, p[i].R); err != nil {
			return err
		}
	}
	return nil
}

// Duplex implements conn.Conn.
func (s *SPI) Duplex() conn.Duplex {
	return conn.Full
}

// Connect implements spi.Port. A nonzero f replaces the configured frequency;
// the clock never exceeds the limit set by LimitSpeed.
func (s *SPI) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if mode&^spi.NoCS != spi.Mode0 {
		return nil, ErrUnsupportedMode
	}
	if bits != 8 {
		return nil, ErrUnsupportedWidth
	}
	if f > 0 {
		s.freq = f
	}
	s.applySpeed()
	return s, nil
}

// LimitSpeed implements spi.Port. It replaces any previous limit.
func (s *SPI) LimitSpeed(f physic.Frequency) error {
	if f <= 0 {
		return fmt.Errorf("%w: invalid speed %s", ErrPkg, f)
	}
	s.limit = f
	s.applySpeed()
	return nil
}

func (s *SPI) String() string {
	if s.ss != nil {
		return "bitbang-spi(cs)"
	}
	return "bitbang-spi"
}

// Serial is a bit-banged serial engine without the full-duplex requirement.
// Each written bit still produces one clock pulse and one sample, and the
// samples form the returned byte. There is no select line.
type Serial struct {
	sck, data Output
	in        Input
	order     BitOrder
}

// NewSerial creates a serial engine. in is optional and reads as Dummy when
// nil, i.e. when nothing is read back.
func NewSerial(sck, data Output, in Input, order BitOrder) (*Serial, error) {
	if sck == nil {
		return nil, fmt.Errorf("%w: clock pin not configured", ErrPkg)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: data pin not configured", ErrPkg)
	}
	if in == nil {
		in = Dummy{}
	}
	return &Serial{sck: sck, data: data, in: in, order: order}, nil
}

// ShiftBit clocks out one bit and returns the sampled input.
func (s *Serial) ShiftBit(bit bool) Level {
	s.sck.Low()
	Write(s.data, LevelOf(bit))
	s.sck.High()
	return s.in.Read()
}

func (s *Serial) shift(l Level) Level {
	return s.ShiftBit(bool(l))
}

// Shift clocks out data in the configured bit order and returns the samples
// recomposed in the same order.
func (s *Serial) Shift(data byte) byte {
	return s.order.Recompose(forEach(s.order, data, s.shift))
}

// ReadWrite implements SPIMaster.
func (s *Serial) ReadWrite(data byte) byte {
	return s.Shift(data)
}

// DummySPI ignores every write and always reads 0.
type DummySPI struct{}

// ReadWrite implements SPIMaster.
func (DummySPI) ReadWrite(byte) byte { return 0 }

var (
	_ SPIMaster   = &SPI{}
	_ SPIMaster   = &Serial{}
	_ SPIMaster   = DummySPI{}
	_ spi.Port    = &SPI{}
	_ spi.Conn    = &SPI{}
	_ drivers.SPI = &SPI{}
)
