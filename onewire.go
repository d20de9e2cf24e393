package bitbang

import (
	"encoding/binary"
	"errors"
	"fmt"

	"periph.io/x/conn/v3/onewire"
)

// 1-Wire timing classes, in microseconds. They are handed unchanged to the
// timing callback.
const (
	DelayShortUS uint32 = 10
	DelayMidUS   uint32 = 30
	DelayLongUS  uint32 = 60
	DelayResetUS uint32 = 500
)

// Command is a 1-Wire ROM command.
type Command uint8

const (
	CommandReadROM     Command = 0x33
	CommandMatchROM    Command = 0x55
	CommandSkipROM     Command = 0xCC
	CommandAlarmSearch Command = 0xEC
	CommandSearch      Command = 0xF0
)

var (
	ErrSearchUnimplemented = errors.New("1-wire device search is not implemented")
	ErrCRC                 = errors.New("1-wire CRC mismatch")
)

// noDevicesError is returned when a reset gets no presence pulse.
// It satisfies the NoDevices() convention periph drivers check for.
type noDevicesError struct{}

func (noDevicesError) Error() string   { return "1-wire: no device present" }
func (noDevicesError) NoDevices() bool { return true }

// ErrNoDevices is returned by Tx and ReadROM when no device answers a reset.
var ErrNoDevices error = noDevicesError{}

// OneWire is a bit-banged 1-Wire master on a single line.
//
// Every delay is delegated to sleep, which must block for at least the given
// number of microseconds. The engine never measures time and cannot detect
// a violated hold.
type OneWire struct {
	w     Line
	sleep func(us uint32)
}

// NewOneWire creates a 1-Wire master driving w and waiting with sleep.
func NewOneWire(w Line, sleep func(us uint32)) (*OneWire, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: 1-wire line not configured", ErrPkg)
	}
	if sleep == nil {
		return nil, fmt.Errorf("%w: 1-wire timing source not configured", ErrPkg)
	}
	return &OneWire{w: w, sleep: sleep}, nil
}

// Reset sends a reset pulse and reports whether a device answered with a
// presence pulse. false is a normal outcome; no retry is attempted.
func (o *OneWire) Reset() bool {
	o.w.Low()
	o.sleep(DelayResetUS)
	o.w.High()
	o.sleep(DelayMidUS)
	return o.w.Read() == Low
}

// WriteBit sends one bit. The length of the low pulse carries the value:
// short for High, long for Low.
func (o *OneWire) WriteBit(bit Level) {
	o.w.Low()
	if bit == High {
		o.sleep(DelayShortUS)
	} else {
		o.sleep(DelayLongUS)
	}
	o.w.High()
}

// ReadBit opens a read slot and returns the level the device left on the line.
func (o *OneWire) ReadBit() Level {
	o.w.Low()
	o.sleep(DelayShortUS)
	o.w.High()
	o.sleep(DelayMidUS)
	return o.w.Read()
}

func (o *OneWire) writeBit(bit Level) struct{} {
	o.WriteBit(bit)
	return struct{}{}
}

// SendByte writes b least significant bit first.
func (o *OneWire) SendByte(b byte) {
	ForEachLSB(b, o.writeBit)
}

// RecvByte reads one byte, least significant bit first.
func (o *OneWire) RecvByte() byte {
	var bits [8]Level
	for i := range bits {
		bits[i] = o.ReadBit()
	}
	return LSBToByte(bits)
}

// Tx resets the bus, writes w, then reads len(r) bytes into r.
// power is accepted for onewire.Bus; the line is a plain capability and
// cannot provide a strong pull-up.
func (o *OneWire) Tx(w, r []byte, power onewire.Pullup) error {
	if !o.Reset() {
		globalLogger.Debug("1-wire reset: no presence pulse")
		return ErrNoDevices
	}
	// Let the presence slot run out before the first write slot.
	o.sleep(DelayResetUS)
	for _, b := range w {
		o.SendByte(b)
	}
	for i := range r {
		r[i] = o.RecvByte()
	}
	return nil
}

// ReadROM reads the address of the only device on the bus.
// With more than one device the answers collide and the CRC check fails.
func (o *OneWire) ReadROM() (onewire.Address, error) {
	var rom [8]byte
	if err := o.Tx([]byte{byte(CommandReadROM)}, rom[:], onewire.WeakPullup); err != nil {
		return 0, err
	}
	if !onewire.CheckCRC(rom[:]) {
		return 0, fmt.Errorf("%w: rom %#x", ErrCRC, rom)
	}
	return onewire.Address(binary.LittleEndian.Uint64(rom[:])), nil
}

// Search implements onewire.Bus. Device enumeration is not implemented.
func (o *OneWire) Search(alarmOnly bool) ([]onewire.Address, error) {
	return nil, ErrSearchUnimplemented
}

func (o *OneWire) String() string {
	return "bitbang-onewire"
}

// Enumeration walks the devices on a bus. It only records the last
// discovered address; the collision-resolution walk is left unimplemented.
type Enumeration struct {
	lastID onewire.Address
}

// Enumerate starts a new enumeration of o.
func (o *OneWire) Enumerate() *Enumeration {
	return &Enumeration{}
}

// LastID returns the last address discovered, or 0 before any.
func (e *Enumeration) LastID() onewire.Address {
	return e.lastID
}

// Next returns the next device address. It always fails with
// ErrSearchUnimplemented and does not touch the bus.
func (e *Enumeration) Next() (onewire.Address, error) {
	return 0, ErrSearchUnimplemented
}

var _ onewire.Bus = &OneWire{}
