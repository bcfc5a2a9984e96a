// Package log is a small levelled logger used by the colourfmt CLI for its
// own diagnostics. The library packages are pure and do not log
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// FTimestamp prefixes each line with a wall-clock timestamp
const FTimestamp = 1 << iota

// Log levels, lowest to highest
const (
	DEBUG = 10 * iota
	INFO
	WARN
	CRIT
)

func levelToString(level int) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO "
	case WARN:
		return "WARN "
	case CRIT:
		return "CRIT "
	}

	return "?????"
}

// Logger is a levelled logging engine. Writes below minLevel are dropped
type Logger struct {
	flags    int
	output   io.Writer
	prefix   string
	wMutex   sync.Mutex
	minLevel int
}

// New creates a Logger with the given options
func New(flags int, output io.Writer, prefix string, minLevel int) *Logger {
	return &Logger{flags: flags, output: output, prefix: prefix, minLevel: minLevel}
}

func (l *Logger) logf(level int, format string, args ...interface{}) {
	if level < l.minLevel {
		return
	}

	out := strings.Builder{}

	if l.flags&FTimestamp != 0 {
		out.WriteByte('[')
		out.WriteString(time.Now().Format("15:04:05.000"))
		out.WriteString("] ")
	}

	out.WriteByte('[')
	out.WriteString(levelToString(level))
	out.WriteString("] ")

	if l.prefix != "" {
		out.WriteByte('[')
		out.WriteString(l.prefix)
		out.WriteString("] ")
	}

	out.WriteString(strings.TrimRight(fmt.Sprintf(format, args...), "\r\n"))
	out.WriteByte('\n')

	l.wMutex.Lock()
	defer l.wMutex.Unlock()
	_, _ = l.output.Write([]byte(out.String()))
}

// Debugf logs at the Debug level. Arguments are formatted fmt.Sprintf style
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DEBUG, format, args...)
}

// Infof logs at the Info level. Arguments are formatted fmt.Sprintf style
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

// Warnf logs at the Warn level. Arguments are formatted fmt.Sprintf style
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(WARN, format, args...)
}

// Critf logs at the Crit level and exits the process
func (l *Logger) Critf(format string, args ...interface{}) {
	l.logf(CRIT, format, args...)
	os.Exit(1)
}
