package calculation

import (
	"io"
	"log"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled lines to an io.Writer. Debug lines are dropped unless enabled.
type WriterLogger struct {
	out   *log.Logger
	debug bool
}

// NewWriterLogger returns a Logger writing to w (usually os.Stderr).
func NewWriterLogger(w io.Writer, debug bool) *WriterLogger {
	return &WriterLogger{out: log.New(w, "finplan ", log.LstdFlags), debug: debug}
}

func (l *WriterLogger) Debugf(format string, args ...any) {
	if l.debug {
		l.out.Printf("DEBUG "+format, args...)
	}
}

func (l *WriterLogger) Infof(format string, args ...any)  { l.out.Printf("INFO "+format, args...) }
func (l *WriterLogger) Warnf(format string, args ...any)  { l.out.Printf("WARN "+format, args...) }
func (l *WriterLogger) Errorf(format string, args ...any) { l.out.Printf("ERROR "+format, args...) }
