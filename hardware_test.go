package bitbang

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewSPIDefaults(t *testing.T) {
	useLogger(t, &nopLogger{})

	p := &mockPin{}
	var sleeps []time.Duration
	s, err := newSPI(BusConfig{}, spiPins{SCK: p, MOSI: p, MISO: p}, func(d time.Duration) { sleeps = append(sleeps, d) })
	if err != nil {
		t.Fatalf("newSPI failed: %v", err)
	}
	if s.half != 5*time.Microsecond {
		t.Errorf("default half period = %v, want 5µs", s.half)
	}
	if s.ss != nil {
		t.Error("no CS pin should leave the select line unset")
	}
	s.ReadWrite(0)
	if len(sleeps) != 16 {
		t.Errorf("expected 16 settling delays, got %d", len(sleeps))
	}

	if _, err := newSPI(BusConfig{}, spiPins{SCK: p, MOSI: p}, time.Sleep); err == nil {
		t.Error("missing MISO should fail")
	}
}

func TestNewSPIDebug(t *testing.T) {
	rec := &recordingLogger{}
	useLogger(t, rec)

	tr := &trace{}
	mosi := &mockPin{name: "MOSI", tr: tr}
	s, err := newSPI(BusConfig{Debug: true}, spiPins{
		SCK:  &mockPin{},
		MOSI: mosi,
		MISO: InputFunc(func() Level { return mosi.level }),
		SS:   &mockPin{},
	}, func(time.Duration) {})
	if err != nil {
		t.Fatal(err)
	}
	rec.msgs = nil

	if got := s.ReadWrite(0x81); got != 0x81 {
		t.Errorf("traced bus ReadWrite = %#02x", got)
	}
	if len(tr.ops) != 8 {
		t.Errorf("MOSI writes must still reach the pin, got %v", tr.ops)
	}
	want := []string{"DEBUG SS LOW", "DEBUG SCK LOW", "DEBUG MOSI HIGH", "DEBUG SCK HIGH"}
	if len(rec.msgs) < len(want) {
		t.Fatalf("too few debug messages: %v", rec.msgs)
	}
	if diff := cmp.Diff(want, rec.msgs[:len(want)]); diff != "" {
		t.Errorf("debug trace mismatch (-want, +got):\n%s", diff)
	}
	if last := rec.msgs[len(rec.msgs)-1]; last != "DEBUG SS HIGH" {
		t.Errorf("last debug message = %q", last)
	}
}

func TestNewOneWireDebug(t *testing.T) {
	rec := &recordingLogger{}
	useLogger(t, rec)

	line := &busLine{driven: High}
	w1, err := newOneWire(BusConfig{Debug: true}, line, func(us uint32) {
		line.pulled = us == DelayMidUS
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(rec.msgs[0], "INFO ") {
		t.Errorf("expected an info message on creation, got %v", rec.msgs)
	}
	rec.msgs = nil

	if !w1.Reset() {
		t.Error("traced line must still read the device")
	}
	want := []string{"DEBUG W1 LOW", "DEBUG W1 HIGH"}
	if diff := cmp.Diff(want, rec.msgs); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
