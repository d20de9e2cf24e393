package bitbang

// NotOutput returns an Output that drives o to the opposite level.
func NotOutput(o Output) Output {
	return &notOutput{o: o}
}

// NotInput returns an Input that reports the opposite of what i reads.
func NotInput(i Input) Input {
	return &notInput{i: i}
}

// NotLine inverts both directions of l.
func NotLine(l Line) Line {
	return &notLine{notOutput{o: l}, notInput{i: l}}
}

type notOutput struct {
	o Output
}

func (n *notOutput) High() { n.o.Low() }
func (n *notOutput) Low()  { n.o.High() }

type notInput struct {
	i Input
}

func (n *notInput) Read() Level { return !n.i.Read() }

type notLine struct {
	notOutput
	notInput
}

// OutputPair adapts two callbacks into an Output.
type OutputPair struct {
	OnHigh func()
	OnLow  func()
}

func (p OutputPair) High() { p.OnHigh() }
func (p OutputPair) Low()  { p.OnLow() }

// OutputFunc adapts a single callback receiving the level into an Output.
type OutputFunc func(Level)

func (f OutputFunc) High() { f(High) }
func (f OutputFunc) Low()  { f(Low) }

// InputFunc adapts a level producer into an Input.
type InputFunc func() Level

func (f InputFunc) Read() Level { return f() }

// Const is an Input that always reads the same level.
type Const Level

const (
	AlwaysHigh = Const(High)
	AlwaysLow  = Const(Low)
)

func (c Const) Read() Level { return Level(c) }

// Dummy stands in for a line that does not exist. Writes are dropped and
// reads are always Low.
type Dummy struct{}

func (Dummy) High()       {}
func (Dummy) Low()        {}
func (Dummy) Read() Level { return Low }

var (
	_ Output = OutputPair{}
	_ Output = OutputFunc(nil)
	_ Input  = InputFunc(nil)
	_ Input  = AlwaysHigh
	_ Line   = Dummy{}
	_ Line   = &notLine{}
)
