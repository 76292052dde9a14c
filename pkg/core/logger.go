package core

import (
	"fmt"
	"io"
	"os"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// WriterLogger implements Logger by writing to an io.Writer
type WriterLogger struct {
	out io.Writer
}

// NewDefaultLogger creates a logger that writes to stdout
func NewDefaultLogger() Logger {
	return &WriterLogger{out: os.Stdout}
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) Logger {
	return &WriterLogger{out: w}
}

func (l *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format, args...)
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// NopLogger returns a logger that discards all messages
func NopLogger() Logger {
	return nopLogger{}
}
