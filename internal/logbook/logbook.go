// Package logbook persists what loanplan did to a plain text file, so the
// plot paths and any failures survive after the dashboard closes. The TUI
// tails it for its log panel.
package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Field is a key=value pair appended after an entry's message, so tools
// grepping the log can pull out plot paths and loan parameters.
type Field struct {
	Key   string
	Value string
}

// Logbook is an append-only file log. All methods are safe on a nil
// receiver; a broken log must never take the UI down with it.
type Logbook struct {
	path string
	mu   sync.Mutex
}

// New creates a logbook that writes to the provided path, creating parent
// directories as needed.
func New(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Logbook{path: path}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Event writes a timestamped entry with optional key=value fields.
func (l *Logbook) Event(level Level, message string, fields ...Field) {
	if l == nil {
		return
	}
	var b strings.Builder
	b.WriteString(time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, " %-5s %s", string(level), strings.TrimSpace(message))
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%s", f.Key, f.Value)
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(b.String())
}

// Tail returns up to maxLines of the most recent entries, oldest first.
func (l *Logbook) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}

// PlotWritten records a generated PNG with its path as a field.
func (l *Logbook) PlotWritten(path string) {
	l.Event(LevelInfo, "plot written", Field{Key: "path", Value: path})
}

// ScheduleBuilt records a computed repayment schedule.
func (l *Logbook) ScheduleBuilt(model string, principal, rate string, termYears int) {
	l.Event(LevelInfo, "schedule built",
		Field{Key: "model", Value: model},
		Field{Key: "principal", Value: principal},
		Field{Key: "rate", Value: rate},
		Field{Key: "term_years", Value: fmt.Sprint(termYears)},
	)
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.Event(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (l *Logbook) Warn(format string, args ...any) {
	l.Event(LevelWarn, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logbook) Error(format string, args ...any) {
	l.Event(LevelError, fmt.Sprintf(format, args...))
}
