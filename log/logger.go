// Package log provides a simple logging interface for filter
package log

import (
	"context"
	"io"
	"log/slog"
)

var (
	// Discard is a slog.Handler that drops every record.
	Discard slog.Handler = discardHandler{}

	// Null is a logger that outputs nothing.
	Null = slog.New(Discard)
)

const (
	KeyError     = "error"
	KeyBytes     = "bytes"
	KeyChunks    = "chunks"
	KeyMatches   = "matches"
	KeyComponent = "component"
)

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

// ErrorAttr returns an attribute holding the error message, or an empty
// string for a nil error.
func ErrorAttr(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: KeyError, Value: slog.StringValue("")}
	}
	return slog.Attr{Key: KeyError, Value: slog.StringValue(err.Error())}
}

// ComponentAttr returns an attribute naming the component that produced a log line.
func ComponentAttr(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// New returns a text logger writing to out at the given level. Timestamps are
// left out, it is easier for the consumer to add them than to remove them.
func New(out io.Writer, lvl slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return attr
		},
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// Logger interface is implemented by slog.Logger and some other logging packages
// and can be easily used via a wrapper with any other logging system.
// The functions are not sprintf-style. Keys and values are key-value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

type withAttrs struct {
	logger Logger
	attrs  []any
}

func (w *withAttrs) kv(kv []any) []any {
	out := make([]any, 0, len(w.attrs)+len(kv))
	out = append(out, w.attrs...)
	return append(out, kv...)
}

func (w *withAttrs) Debug(msg string, keysAndValues ...any) {
	w.logger.Debug(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Info(msg string, keysAndValues ...any) {
	w.logger.Info(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Warn(msg string, keysAndValues ...any) {
	w.logger.Warn(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Error(msg string, keysAndValues ...any) {
	w.logger.Error(msg, w.kv(keysAndValues)...)
}

// WithAttrs returns a logger that prepends attrs to every call.
func WithAttrs(logger Logger, attrs ...any) Logger {
	return &withAttrs{logger, attrs}
}

// LoggerInjectable is a struct that can be embedded in other structs to provide a logger and a log setter.
type LoggerInjectable struct {
	logger Logger
}

// Log interface is implemented by the LoggerInjectable struct.
type Log interface {
	Log() Logger
}

type injectable interface {
	SetLogger(logger Logger)
}

// InjectLogger sets the logger for the given object if it has a SetLogger method.
func InjectLogger(l Logger, obj any, attrs ...any) {
	if o, ok := obj.(injectable); ok {
		if len(attrs) > 0 {
			o.SetLogger(WithAttrs(l, attrs...))
		} else {
			o.SetLogger(l)
		}
	}
}

// GetLogger returns the logger for the given object if it implements the Log interface or a Null logger.
func GetLogger(obj any) Logger {
	if o, ok := obj.(Log); ok {
		return o.Log()
	}
	return Null
}

// InjectLoggerTo passes the embedding object's logger on to obj.
func (li *LoggerInjectable) InjectLoggerTo(obj any, attrs ...any) {
	if li.HasLogger() {
		InjectLogger(li.logger, obj, attrs...)
	}
}

// SetLogger sets the logger for the embedding object.
func (li *LoggerInjectable) SetLogger(logger Logger) {
	li.logger = logger
}

// HasLogger returns true if a logger has been set.
func (li *LoggerInjectable) HasLogger() bool {
	return li.logger != nil && li.logger != Null
}

// Log returns the logger for the embedding object.
func (li *LoggerInjectable) Log() Logger {
	if li.logger == nil {
		return Null
	}
	return li.logger
}
