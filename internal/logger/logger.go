// Package logger provides a small printf-style logging interface so rtop
// packages can report problems without owning the terminal. While the
// dashboard is running, output is redirected to a file (or discarded) with
// Redirect.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "RTOP_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// envLogger writes through the standard log package. Debug lines are only
// written when RTOP_DEBUG is set.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger that respects the RTOP_DEBUG environment
// variable. The prefix is prepended to every message, e.g. "[collect]".
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...any) {
	if os.Getenv(DebugEnv) != "" {
		log.Printf(l.prefix+" DEBUG: "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...any) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...any) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...any) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures messages in memory for test assertions. It is safe
// for concurrent use.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...any) { l.add("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...any)  { l.add("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...any)  { l.add("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...any) { l.add("error", format, args...) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewEnvLogger("[rtop]")
)

// Default returns the package-level logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Redirect points the standard logger away from the terminal for the
// lifetime of the dashboard. With a path, messages are appended to that
// file; without one they are discarded. Close the result on exit.
func Redirect(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, "rtop")
	if err != nil {
		return nil, err
	}
	return f, nil
}
