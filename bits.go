package bitbang

// BitOrder selects which end of a byte goes on the wire first.
type BitOrder uint8

const (
	MSBFirst BitOrder = iota
	LSBFirst
)

func (o BitOrder) String() string {
	switch o {
	case MSBFirst:
		return "msb-first"
	case LSBFirst:
		return "lsb-first"
	default:
		return "unknown"
	}
}

// ForEachMSB calls f on each bit of b, most significant first, and collects
// the results in the same order. Each call returns before the next starts.
func ForEachMSB[T any](b byte, f func(Level) T) [8]T {
	var out [8]T
	for i := range out {
		out[i] = f(b&(0x80>>i) != 0)
	}
	return out
}

// ForEachLSB is ForEachMSB starting from the least significant bit.
func ForEachLSB[T any](b byte, f func(Level) T) [8]T {
	var out [8]T
	for i := range out {
		out[i] = f(b&(1<<i) != 0)
	}
	return out
}

func identity(l Level) Level { return l }

// DecomposeMSB splits b into its bit levels, most significant first.
func DecomposeMSB(b byte) [8]Level {
	return ForEachMSB(b, identity)
}

// DecomposeLSB splits b into its bit levels, least significant first.
func DecomposeLSB(b byte) [8]Level {
	return ForEachLSB(b, identity)
}

// MSBToByte rebuilds a byte from levels ordered most significant first.
func MSBToByte(bits [8]Level) byte {
	var b byte
	for _, l := range bits {
		b = b<<1 | l.Byte()
	}
	return b
}

// LSBToByte rebuilds a byte from levels ordered least significant first.
func LSBToByte(bits [8]Level) byte {
	var b byte
	for i, l := range bits {
		b |= l.Byte() << i
	}
	return b
}

// Decompose splits b in order o.
func (o BitOrder) Decompose(b byte) [8]Level {
	if o == LSBFirst {
		return DecomposeLSB(b)
	}
	return DecomposeMSB(b)
}

// Recompose is the inverse of Decompose.
func (o BitOrder) Recompose(bits [8]Level) byte {
	if o == LSBFirst {
		return LSBToByte(bits)
	}
	return MSBToByte(bits)
}

// forEach dispatches to ForEachMSB or ForEachLSB.
func forEach(o BitOrder, b byte, f func(Level) Level) [8]Level {
	if o == LSBFirst {
		return ForEachLSB(b, f)
	}
	return ForEachMSB(b, f)
}
