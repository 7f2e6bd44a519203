package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Level int

const (
	DEBUG Level = iota
	WARN
	ERROR
)

var levelPrefixes = map[Level]string{
	DEBUG: "",
	WARN:  "WARNING: ",
	ERROR: "ERROR: ",
}

// Logger is the debug-log collaborator shared by every component. It owns a
// single append target, truncated when opened, and writes one
// "[HH:MM:SS] message" line per call. Writes are serialized and flushed
// immediately; the file stays open for the whole run.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

// New opens (and truncates) the debug log at path and writes a dated header.
func New(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open %s: %w", path, err)
	}
	l := &Logger{out: f, level: DEBUG}
	fmt.Fprintf(f, "=== Power Manager Debug Log - %s ===\n", time.Now().Format("2006-01-02 15:04:05"))
	return l, nil
}

// Discard returns a logger that drops everything. Used when the debug log
// cannot be opened, and in tests.
func Discard() *Logger {
	return &Logger{out: io.Discard, level: ERROR}
}

// SetLevel sets the minimum level written to the log.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) write(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s%s\n", time.Now().Format("15:04:05"), levelPrefixes[level], msg)
}

// Debugf logs a plain progress message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(DEBUG, format, args...)
}

// Warnf logs a non-fatal problem with a WARNING prefix.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(WARN, format, args...)
}

// Errorf logs a failure with an ERROR prefix.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(ERROR, format, args...)
}
