// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/buildtrigger/internal/adapters/detector"
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/core/ports"
	"go.trai.ch/zerr"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false)),
		output: os.Stderr,
	}
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode setting.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty logging.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable

	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w, enable))
}

// SetFormat applies a configured log format, resolving auto against the environment.
func (l *Logger) SetFormat(format domain.LogFormat) {
	resolved := detector.ResolveFormat(detector.DetectFormat(), format)
	l.SetJSON(resolved == domain.LogFormatJSON)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	entries := collectErrorEntries(err)

	if l.jsonMode {
		args := []any{"error", err.Error()}
		for _, key := range sortedKeys(entries.metadata) {
			args = append(args, key, entries.metadata[key])
		}
		l.logger.Error(entries.messages[0], args...)
		return
	}

	l.logger.Error(formatErrorEntries(entries.messages))
}

type errorEntries struct {
	messages []string
	metadata map[string]any
}

// collectErrorEntries walks the error chain, collecting each zerr message and
// its metadata. The walk stops at the first error that is not a zerr error.
func collectErrorEntries(err error) errorEntries {
	entries := errorEntries{metadata: make(map[string]any)}

	for current := err; current != nil; {
		if z, ok := current.(*zerr.Error); ok {
			for k, v := range z.Metadata() {
				if _, seen := entries.metadata[k]; !seen {
					entries.metadata[k] = v
				}
			}
		}

		m, ok := current.(messager)
		if !ok {
			entries.messages = append(entries.messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			entries.messages = append(entries.messages, msg)
		}
		current = errors.Unwrap(current)
	}

	if len(entries.messages) == 0 {
		entries.messages = append(entries.messages, err.Error())
	}

	return entries
}

// formatErrorEntries renders the collected messages hierarchically.
func formatErrorEntries(messages []string) string {
	var formattedLines []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formattedLines = append(formattedLines, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
			continue
		}

		if i == 1 {
			formattedLines = append(formattedLines, "", "  Caused by:")
		}
		formattedLines = append(formattedLines, "    → "+lines[0])
		for _, line := range lines[1:] {
			formattedLines = append(formattedLines, "      "+line)
		}
	}

	return strings.Join(formattedLines, "\n")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
