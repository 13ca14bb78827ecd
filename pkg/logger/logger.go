// Package logger provides structured logging for curve and signing
// operations with helpers for big integers and redaction of secrets.
package logger

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error, disabled)
	Level string

	// Output is where logs are written (default: os.Stderr)
	Output io.Writer

	// Pretty enables human-readable console output
	Pretty bool

	// TimeFormat for timestamps (default: RFC3339)
	TimeFormat string

	// CallerEnabled adds file and line number to logs
	CallerEnabled bool
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// New creates a logger from cfg. An unknown level is an error.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Pretty {
		timeFormat := cfg.TimeFormat
		if timeFormat == "" {
			timeFormat = time.RFC3339
		}
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: timeFormat,
		}
	}

	zctx := zerolog.New(output).Level(level).With().Timestamp()
	if cfg.CallerEnabled {
		zctx = zctx.Caller()
	}

	return &Logger{zlog: zctx.Logger()}, nil
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// ParseLevel converts a level name to a zerolog.Level. The empty string
// means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() zerolog.Level {
	return l.zlog.GetLevel()
}

// With creates a child logger with additional context
func (l *Logger) With() *Context {
	return &Context{zctx: l.zlog.With()}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.zlog.Debug().Msg(msg)
}

// DebugEvent returns a debug event
func (l *Logger) DebugEvent() *Event {
	return &Event{zevent: l.zlog.Debug()}
}

// InfoEvent returns an info event
func (l *Logger) InfoEvent() *Event {
	return &Event{zevent: l.zlog.Info()}
}

// WarnEvent returns a warn event
func (l *Logger) WarnEvent() *Event {
	return &Event{zevent: l.zlog.Warn()}
}

// Context provides fluent API for adding fields to a child logger
type Context struct {
	zctx zerolog.Context
}

// Str adds a string field
func (c *Context) Str(key, val string) *Context {
	c.zctx = c.zctx.Str(key, val)
	return c
}

// Logger returns the configured logger
func (c *Context) Logger() *Logger {
	return &Logger{zlog: c.zctx.Logger()}
}

// Event represents a log event. A disabled event ignores all fields.
type Event struct {
	zevent *zerolog.Event
}

// Str adds a string field to the event
func (e *Event) Str(key, val string) *Event {
	e.zevent.Str(key, val)
	return e
}

// Bool adds a boolean field to the event
func (e *Event) Bool(key string, val bool) *Event {
	e.zevent.Bool(key, val)
	return e
}

// Err adds an error field to the event
func (e *Event) Err(err error) *Event {
	e.zevent.AnErr("error", err)
	return e
}

// BigInt adds a big integer field in decimal. Only public values belong
// here; use Secret for keys and nonces.
func (e *Event) BigInt(key string, val *big.Int) *Event {
	if e.zevent.Enabled() {
		e.zevent.Str(key, formatBigInt(val))
	}
	return e
}

// Hex adds a byte slice field in lowercase hex
func (e *Event) Hex(key string, val []byte) *Event {
	e.zevent.Str(key, hex.EncodeToString(val))
	return e
}

// Stringer adds a field using val.String()
func (e *Event) Stringer(key string, val fmt.Stringer) *Event {
	e.zevent.Stringer(key, val)
	return e
}

// Secret records that a secret integer was present without revealing any
// part of it
func (e *Event) Secret(key string, val *big.Int) *Event {
	if e.zevent.Enabled() {
		e.zevent.Str(key, RedactSecret(formatBigInt(val)))
	}
	return e
}

// Msg completes the event with a message
func (e *Event) Msg(msg string) {
	e.zevent.Msg(msg)
}

func formatBigInt(v *big.Int) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// RedactSecret replaces a secret with a fixed marker. No prefix is kept:
// leading digits of a nonce are enough to mount lattice attacks.
func RedactSecret(secret string) string {
	if len(secret) == 0 {
		return "<empty>"
	}
	return "<redacted>"
}
