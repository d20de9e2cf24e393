package bitbang

import (
	"sync"
	"testing"
)

// --- Mocks ---

// trace records pin operations in the order they happen.
type trace struct {
	ops []string
}

func (t *trace) add(op string) { t.ops = append(t.ops, op) }

// mockPin records writes into a shared trace and reads back a level that
// defaults to the last value written.
type mockPin struct {
	name  string
	tr    *trace
	level Level
}

func (m *mockPin) High() {
	m.level = High
	if m.tr != nil {
		m.tr.add(m.name + " HIGH")
	}
}

func (m *mockPin) Low() {
	m.level = Low
	if m.tr != nil {
		m.tr.add(m.name + " LOW")
	}
}

func (m *mockPin) Read() Level {
	if m.tr != nil {
		m.tr.add(m.name + " READ")
	}
	return m.level
}

// recordingLogger keeps every message that reaches it.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func (l *recordingLogger) Debug(msg string) { l.log("DEBUG " + msg) }
func (l *recordingLogger) Info(msg string)  { l.log("INFO " + msg) }
func (l *recordingLogger) Warn(msg string)  { l.log("WARN " + msg) }
func (l *recordingLogger) Error(msg string) { l.log("ERROR " + msg) }

// useLogger installs l for the duration of a test.
func useLogger(t interface{ Cleanup(func()) }, l Logger) {
	prev := globalLogger
	SetLogger(l)
	t.Cleanup(func() { globalLogger = prev })
}

func mustOneWire(t *testing.T, w Line, sleep func(us uint32)) *OneWire {
	t.Helper()
	o, err := NewOneWire(w, sleep)
	if err != nil {
		t.Fatalf("NewOneWire failed: %v", err)
	}
	return o
}

func mustSerial(t *testing.T, sck, data Output, in Input, order BitOrder) *Serial {
	t.Helper()
	s, err := NewSerial(sck, data, in, order)
	if err != nil {
		t.Fatalf("NewSerial failed: %v", err)
	}
	return s
}
