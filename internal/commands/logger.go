package commands

import (
	"fmt"
	"io"
)

// streamLogger routes engine diagnostics to the command's error stream when
// --verbose is set.
type streamLogger struct {
	out io.Writer
}

func (l *streamLogger) Debugf(format string, args ...any) { l.logf("DEBUG", format, args...) }
func (l *streamLogger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l *streamLogger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l *streamLogger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }

func (l *streamLogger) logf(level, format string, args ...any) {
	fmt.Fprintf(l.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
