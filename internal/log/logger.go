// Package log is a thin zerolog wrapper shared by the C library and the
// console program.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Redacted is logged in place of any value that would carry key material.
const Redacted = "[redacted]"

// Format selects the log encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Logger embeds zerolog.Logger so callers use the usual event API.
type Logger struct {
	zerolog.Logger
}

// Option configures a Logger.
type Option func(*options)

type options struct {
	level  zerolog.Level
	format Format
	out    io.Writer
}

// WithLevel sets the minimum level.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFormat selects console or JSON output.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithWriter redirects output, stderr by default.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// New builds a Logger. The default is console output on stderr at info level.
func New(opts ...Option) *Logger {
	o := options{level: zerolog.InfoLevel, format: FormatConsole, out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	w := o.out
	if o.format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.DateTime, NoColor: true}
	}
	return &Logger{Logger: zerolog.New(w).Level(o.level).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level. "disabled" and "off" turn
// logging off; an empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "":
		return zerolog.InfoLevel, nil
	case "off":
		return zerolog.Disabled, nil
	}
	return zerolog.ParseLevel(strings.ToLower(s))
}
