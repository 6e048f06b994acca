// SPDX-License-Identifier: MIT

package logging

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrUnknownLevel indicates a level name that ParseLevel does not recognize.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Level is the minimum severity a Logger prints.
type Level uint

const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	SilentLevel
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case SilentLevel:
		return "silent"
	}
	return fmt.Sprintf("level(%d)", uint(l))
}

// ParseLevel maps a level name (case-insensitive) to a Level.
// The empty string yields InfoLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "silent", "off":
		return SilentLevel, nil
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Logger records messages at different severities.
type Logger interface {
	// Debugf formats its arguments analogous to fmt.Printf and records the
	// text at Debug level.
	Debugf(format string, args ...interface{})

	// Infof is like Debugf, but at Info level.
	Infof(format string, args ...interface{})

	// Warningf is like Debugf, but at Warning level.
	Warningf(format string, args ...interface{})

	// Errorf is like Debugf, but at Error level.
	Errorf(format string, args ...interface{})
}

// stdLogger writes through a *log.Logger with a severity prefix.
type stdLogger struct {
	out   *log.Logger
	level Level
}

// Std returns a Logger that writes through the standard log package's
// default logger, printing messages at or above level.
func Std(level Level) Logger {
	return stdLogger{out: log.Default(), level: level}
}

// New returns a Logger that writes through out, printing messages at or
// above level. A nil out falls back to the standard default logger.
func New(out *log.Logger, level Level) Logger {
	if out == nil {
		out = log.Default()
	}
	return stdLogger{out: out, level: level}
}

func (s stdLogger) printf(l Level, prefix, format string, args []interface{}) {
	if s.level > l {
		return
	}
	s.out.Printf(prefix+format, args...)
}

func (s stdLogger) Debugf(format string, args ...interface{}) {
	s.printf(DebugLevel, "   DEBUG ", format, args)
}

func (s stdLogger) Infof(format string, args ...interface{}) {
	s.printf(InfoLevel, "    INFO ", format, args)
}

func (s stdLogger) Warningf(format string, args ...interface{}) {
	s.printf(WarningLevel, " WARNING ", format, args)
}

func (s stdLogger) Errorf(format string, args ...interface{}) {
	s.printf(ErrorLevel, "   ERROR ", format, args)
}

type nopLogger struct{}

// Nop returns a Logger that discards every message.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}
