// Package logging provides the line-oriented CLI logger.
package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger writes prefixed log lines. Informational lines go to stdout so
// they can be captured by commit hooks; error lines go to stderr.
type Logger interface {
	Infof(format string, a ...any)
	Errorf(format string, a ...any)
}

type logger struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// New returns a Logger for console use. Informational lines are dropped
// when quiet is set; error lines are always written.
func New(quiet bool) Logger {
	return &logger{out: os.Stdout, errOut: os.Stderr, quiet: quiet}
}

// NewWithWriter returns a Logger sending both levels to w.
func NewWithWriter(w io.Writer, quiet bool) Logger {
	return &logger{out: w, errOut: w, quiet: quiet}
}

func (l *logger) Infof(format string, a ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "[INFO] "+format+"\n", a...)
}

func (l *logger) Errorf(format string, a ...any) {
	fmt.Fprintf(l.errOut, "[ERROR] "+format+"\n", a...)
}
