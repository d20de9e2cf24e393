package bitbang

import "strconv"

// DebugPin is an Output that only reports transitions to the package logger,
// as "<name> HIGH" and "<name> LOW".
type DebugPin struct {
	Name string
}

func (p DebugPin) High() { globalLogger.Debug(p.Name + " HIGH") }
func (p DebugPin) Low()  { globalLogger.Debug(p.Name + " LOW") }

// TracedOutput forwards every write to Out and reports it to the package
// logger under Name.
type TracedOutput struct {
	Name string
	Out  Output
}

func (t TracedOutput) High() {
	globalLogger.Debug(t.Name + " HIGH")
	t.Out.High()
}

func (t TracedOutput) Low() {
	globalLogger.Debug(t.Name + " LOW")
	t.Out.Low()
}

// SelectOutput returns o traced under name when debug is set, o otherwise.
// Engines never know which one they were given.
func SelectOutput(debug bool, name string, o Output) Output {
	if !debug {
		return o
	}
	return TracedOutput{Name: name, Out: o}
}

// DebugSPI is an SPIMaster that reports every byte as "SPI: <bits>" and
// reads 0.
type DebugSPI struct{}

// ReadWrite implements SPIMaster.
func (DebugSPI) ReadWrite(data byte) byte {
	globalLogger.Debug("SPI: " + binaryByte(data))
	return 0
}

// binaryByte formats b as eight binary digits.
func binaryByte(b byte) string {
	s := strconv.FormatUint(uint64(b)|0x100, 2)
	return s[1:]
}

var _ SPIMaster = DebugSPI{}
