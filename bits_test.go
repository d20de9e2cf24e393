package bitbang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecomposeKnownByte(t *testing.T) {
	want := [8]Level{High, Low, High, Low, Low, High, Low, High}
	if got := DecomposeMSB(0xA5); got != want {
		t.Errorf("DecomposeMSB(0xA5) = %v, want %v", got, want)
	}
	want = [8]Level{Low, Low, Low, Low, High, High, High, Low}
	if got := DecomposeLSB(0x70); got != want {
		t.Errorf("DecomposeLSB(0x70) = %v, want %v", got, want)
	}
}

func TestBitRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if got := MSBToByte(DecomposeMSB(b)); got != b {
			t.Errorf("MSBToByte(DecomposeMSB(%#02x)) = %#02x", b, got)
		}
		if got := LSBToByte(DecomposeLSB(b)); got != b {
			t.Errorf("LSBToByte(DecomposeLSB(%#02x)) = %#02x", b, got)
		}
		for _, o := range []BitOrder{MSBFirst, LSBFirst} {
			if got := o.Recompose(o.Decompose(b)); got != b {
				t.Errorf("%s round trip of %#02x = %#02x", o, b, got)
			}
		}
	}
}

func TestMSBIsReversedLSB(t *testing.T) {
	for i := 0; i < 256; i++ {
		msb := DecomposeMSB(byte(i))
		lsb := DecomposeLSB(byte(i))
		for j := range msb {
			if msb[j] != lsb[7-j] {
				t.Fatalf("byte %#02x: msb[%d]=%v, lsb[%d]=%v", i, j, msb[j], 7-j, lsb[7-j])
			}
		}
	}
}

func TestForEachRunsInOrder(t *testing.T) {
	var calls []Level
	got := ForEachMSB(0x81, func(l Level) int {
		calls = append(calls, l)
		return len(calls)
	})
	if want := [8]int{1, 2, 3, 4, 5, 6, 7, 8}; got != want {
		t.Errorf("results = %v, want %v", got, want)
	}
	want := []Level{High, Low, Low, Low, Low, Low, Low, High}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("call order mismatch (-want, +got):\n%s", diff)
	}

	calls = nil
	ForEachLSB(0x03, func(l Level) struct{} {
		calls = append(calls, l)
		return struct{}{}
	})
	want = []Level{High, High, Low, Low, Low, Low, Low, Low}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("lsb call order mismatch (-want, +got):\n%s", diff)
	}
}
