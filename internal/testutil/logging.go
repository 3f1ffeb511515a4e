package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// TestLogHandler captures slog records in memory so tests can assert on what
// was logged.
type TestLogHandler struct {
	mu      sync.Mutex
	records []TestLogRecord
}

type TestLogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

func NewTestLogHandler() *TestLogHandler {
	return &TestLogHandler{}
}

func (h *TestLogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *TestLogHandler) Handle(_ context.Context, record slog.Record) error {
	attrs := make(map[string]any)
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, TestLogRecord{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   attrs,
	})

	return nil
}

func (h *TestLogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *TestLogHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *TestLogHandler) Records() []TestLogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]TestLogRecord(nil), h.records...)
}

func (h *TestLogHandler) ContainsMessage(level slog.Level, message string) bool {
	for _, record := range h.Records() {
		if record.Level == level && record.Message == message {
			return true
		}
	}
	return false
}
