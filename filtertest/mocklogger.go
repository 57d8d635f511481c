// Package filtertest contains test helpers for code using the filter packages.
package filtertest

import (
	"log/slog"
	"sync"

	"github.com/k0sproject/filter/log"
)

var _ log.Logger = (*MockLogger)(nil)

// MockLogEntry is a single recorded log call.
type MockLogEntry struct {
	Level         slog.Level
	Message       string
	KeysAndValues []any
}

// Value returns the value logged for key and whether it was present. Both
// key-value pairs and slog.Attr arguments are searched.
func (e MockLogEntry) Value(key string) (any, bool) {
	for i := 0; i < len(e.KeysAndValues); i++ {
		switch k := e.KeysAndValues[i].(type) {
		case slog.Attr:
			if k.Key == key {
				return k.Value.Any(), true
			}
		case string:
			if i+1 >= len(e.KeysAndValues) {
				return nil, false
			}
			if k == key {
				return e.KeysAndValues[i+1], true
			}
			i++
		}
	}
	return nil, false
}

// MockLogger records every log call it receives.
type MockLogger struct {
	mu      sync.Mutex
	entries []MockLogEntry
}

func (l *MockLogger) log(level slog.Level, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, MockLogEntry{Level: level, Message: msg, KeysAndValues: args})
}

// Entries returns a copy of the recorded entries.
func (l *MockLogger) Entries() []MockLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]MockLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Find returns the first entry with the given message.
func (l *MockLogger) Find(msg string) (MockLogEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.Message == msg {
			return e, true
		}
	}
	return MockLogEntry{}, false
}

// Reset clears the recorded entries.
func (l *MockLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

func (l *MockLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *MockLogger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args...) }
func (l *MockLogger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args...) }
func (l *MockLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }
