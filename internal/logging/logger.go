package logging

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger writes leveled log lines. Debug output is dropped unless enabled.
type Logger struct {
	out   *log.Logger
	debug atomic.Bool
}

// New creates a Logger writing to w.
func New(w io.Writer, debug bool) *Logger {
	l := &Logger{out: log.New(w, "", log.LstdFlags)}
	l.debug.Store(debug || DebugEnabled())
	return l
}

var std = New(os.Stderr, false)

// Default returns the process-wide logger.
func Default() *Logger {
	return std
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, false)
}

// SetDebug turns debug output on or off.
func (l *Logger) SetDebug(enabled bool) {
	l.debug.Store(enabled)
}

// DebugEnabled reports whether Debugf writes anything.
func (l *Logger) DebugEnabled() bool {
	return l.debug.Load()
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.debug.Load() {
		l.out.Printf("[DEBUG] "+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.out.Printf("[INFO] "+format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.out.Printf("[WARN] "+format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.out.Printf("[ERROR] "+format, args...)
}
