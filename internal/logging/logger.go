// Package logging provides categorized file-based logging for the
// Marvelous dashboard. Logs are written to <workspace>/logs/ with one
// file per category. Nothing is written unless debug mode is enabled
// in the config, so the interactive UI stays silent by default.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot     Category = "boot"     // startup, config, wiring
	CategoryShell    Category = "shell"    // branch/theme/view changes
	CategoryFetch    Category = "fetch"    // remote store round trips
	CategoryFallback Category = "fallback" // offline substitutions
	CategoryInsight  Category = "insight"  // generative-text calls
	CategoryStore    Category = "store"    // preference persistence
	CategoryUI       Category = "ui"       // page lifecycle
)

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger wraps a standard logger bound to one category file.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggersMu sync.RWMutex
	loggers   = make(map[Category]*Logger)
	logsDir   string
	enabled   bool
	logLevel  = LevelInfo
)

// Initialize sets up the logging directory. Should be called once at
// startup. When debug is false every log call is a no-op.
func Initialize(workspace string, debug bool, level int) error {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	enabled = debug
	logLevel = level
	if !debug {
		return nil
	}
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}
	logsDir = filepath.Join(workspace, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}

// Get returns the logger for a category, creating its file lazily.
func Get(cat Category) *Logger {
	loggersMu.RLock()
	l, ok := loggers[cat]
	loggersMu.RUnlock()
	if ok {
		return l
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok = loggers[cat]; ok {
		return l
	}

	l = &Logger{category: cat}
	if enabled && logsDir != "" {
		path := filepath.Join(logsDir, string(cat)+".log")
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			l.file = f
			l.logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
		}
	}
	loggers[cat] = l
	return l
}

// Close flushes and closes every category file.
func Close() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

func (l *Logger) write(level int, prefix, format string, args ...interface{}) {
	if !enabled || l.logger == nil || level < logLevel {
		return
	}
	l.logger.Printf("[%s]%s %s", l.category, prefix, fmt.Sprintf(format, args...))
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.write(LevelInfo, "", format, args...)
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(LevelDebug, "[debug]", format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(LevelWarn, "[warn]", format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(LevelError, "[error]", format, args...)
}

// Category convenience helpers: one pair per busy subsystem so call
// sites stay short.

func Boot(format string, args ...interface{})  { Get(CategoryBoot).Info(format, args...) }
func Shell(format string, args ...interface{}) { Get(CategoryShell).Info(format, args...) }

func Fetch(format string, args ...interface{})      { Get(CategoryFetch).Info(format, args...) }
func FetchDebug(format string, args ...interface{}) { Get(CategoryFetch).Debug(format, args...) }

func Fallback(format string, args ...interface{}) { Get(CategoryFallback).Info(format, args...) }

func Insight(format string, args ...interface{})      { Get(CategoryInsight).Info(format, args...) }
func InsightDebug(format string, args ...interface{}) { Get(CategoryInsight).Debug(format, args...) }

func Store(format string, args ...interface{})      { Get(CategoryStore).Info(format, args...) }
func StoreDebug(format string, args ...interface{}) { Get(CategoryStore).Debug(format, args...) }
