//go:build !tinygo

package bitbang

import (
	"log"
)

func init() {
	globalLogger = &stdLogger{}
}

// stdLogger is the host default: bus messages go to the standard log
// package, tagged with their level.
type stdLogger struct{}

func (l *stdLogger) Debug(msg string) {
	log.Print("[DEBUG] " + msg)
}

func (l *stdLogger) Info(msg string) {
	log.Print("[INFO]  " + msg)
}

func (l *stdLogger) Warn(msg string) {
	log.Print("[WARN]  " + msg)
}

func (l *stdLogger) Error(msg string) {
	log.Print("[ERROR] " + msg)
}
