package lint

import (
	"sync"

	"github.com/erraggy/gwlint/config"
)

// logEntry is one call recorded by recordingLogger.
type logEntry struct {
	level string
	msg   string
	attrs map[string]any
}

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
	base    []any
}

func (r *recordingLogger) record(level, msg string, attrs []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := append(append([]any{}, r.base...), attrs...)
	m := make(map[string]any, len(all)/2)
	for i := 0; i+1 < len(all); i += 2 {
		if k, ok := all[i].(string); ok {
			m[k] = all[i+1]
		}
	}
	r.entries = append(r.entries, logEntry{level: level, msg: msg, attrs: m})
}

func (r *recordingLogger) Debug(msg string, attrs ...any) { r.record("debug", msg, attrs) }
func (r *recordingLogger) Info(msg string, attrs ...any)  { r.record("info", msg, attrs) }
func (r *recordingLogger) Warn(msg string, attrs ...any)  { r.record("warn", msg, attrs) }
func (r *recordingLogger) Error(msg string, attrs ...any) { r.record("error", msg, attrs) }
func (r *recordingLogger) With(attrs ...any) Logger {
	return &recordingLogger{base: append(append([]any{}, r.base...), attrs...)}
}

func (r *recordingLogger) at(level string) []logEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []logEntry
	for _, e := range r.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

func settings(autoFix bool) *config.Lint {
	return &config.Lint{Default: true, AutoFix: autoFix}
}
