package bitbang

// Logger receives the few messages the bus engines emit: bus creation at
// Info, pin driver failures at Warn, and pin traces and missing presence
// pulses at Debug. Messages are plain strings so TinyGo firmware can log
// without pulling in fmt.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

var globalLogger Logger = &nopLogger{}

// SetLogger routes the messages of every bus in the package to l.
// A nil logger silences them.
func SetLogger(l Logger) {
	if l == nil {
		globalLogger = &nopLogger{}
		return
	}
	globalLogger = l
}

// nopLogger drops everything; it backs SetLogger(nil).
type nopLogger struct{}

func (l *nopLogger) Debug(msg string) {}
func (l *nopLogger) Info(msg string)  {}
func (l *nopLogger) Warn(msg string)  {}
func (l *nopLogger) Error(msg string) {}
