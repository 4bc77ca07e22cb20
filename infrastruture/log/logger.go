// Package logger provides a tagged, colored logger for application components.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-labyrinth/config"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes lines of the form "<color>[PREFIX]<reset> [LEVEL] msg".
type Logger struct {
	out   *log.Logger
	debug bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithDebug enables Debug output.
func WithDebug(enabled bool) Option {
	return func(l *Logger) {
		l.debug = enabled
	}
}

// New creates a Logger tagged with prefix in the given terminal color.
func New(prefix, color string, w io.Writer, opts ...Option) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		w = io.Discard
	}

	l := &Logger{
		out: log.New(w, fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset), log.LstdFlags),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}

// Debug logs a message only when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if !l.debug {
		return
	}
	l.out.Printf("%s[DEBUG]%s %s", config.LogDebugColor, config.LogColorReset, msg)
}
