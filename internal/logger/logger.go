// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package logger provides the structured logger used across hydro. Everything is written to
// standard error so that table output on standard out stays clean.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Logger wraps a slog.Logger.
type Logger struct {
	*slog.Logger
}

// New returns a console logger on standard error for the given level. Colors are only used when
// standard error is a terminal and NO_COLOR is not set.
func New(level slog.Level) *Logger {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !ColorEnabled(os.Stderr),
	})
	return &Logger{slog.New(handler)}
}

// NewLogger returns a plain text logger that writes to output.
func NewLogger(level slog.Level, output io.Writer) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))}
}

// Err returns the slog attribute for an error.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}

// IsTerminal reports whether the given file is an interactive terminal.
func IsTerminal(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// ColorEnabled reports whether ANSI escapes should be written to file.
func ColorEnabled(file *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(file)
}
