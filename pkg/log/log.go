// Package log is the process-wide structured logger for cvb.
//
// Everything goes to stderr so that it never mixes with the wizard's
// terminal output or with YAML written to stdout.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var (
	logger atomic.Pointer[slog.Logger]
	level  = new(slog.LevelVar)
	format atomic.Value // "text" or "json"
	out    atomic.Pointer[io.Writer]
)

func init() {
	level.Set(slog.LevelWarn)
	var w io.Writer = os.Stderr
	out.Store(&w)
	LoadEnv()
}

// LoadEnv applies CVB_LOG_FORMAT ("json" or "text").
func LoadEnv() {
	SetJSON(strings.EqualFold(os.Getenv("CVB_LOG_FORMAT"), "json"))
}

func rebuild() {
	opts := &slog.HandlerOptions{Level: level}
	w := *out.Load()
	var h slog.Handler
	if format.Load() == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger.Store(slog.New(h).With("app", "cvb"))
}

// SetVerbose switches between debug and the default warning level.
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}
}

// SetQuiet drops everything below error.
func SetQuiet(quiet bool) {
	if quiet {
		level.Set(slog.LevelError)
	}
}

// SetJSON selects the JSON handler.
func SetJSON(json bool) {
	if json {
		format.Store("json")
	} else {
		format.Store("text")
	}
	rebuild()
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	out.Store(&w)
	rebuild()
}

func Debug(msg string, args ...any) { logger.Load().Debug(msg, args...) }

func Info(msg string, args ...any) { logger.Load().Info(msg, args...) }

func Warn(msg string, args ...any) { logger.Load().Warn(msg, args...) }

func Error(msg string, args ...any) { logger.Load().Error(msg, args...) }

// With returns a child logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return logger.Load().With(args...)
}
