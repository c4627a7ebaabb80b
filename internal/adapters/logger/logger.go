// Package logger provides the slog-backed implementation of ports.Logger.
package logger

import (
	"io"
	"log/slog"

	"go.trai.ch/six/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger writes structured text logs.
type Logger struct {
	log *slog.Logger
}

// New returns a logger writing to w. Debug messages are suppressed unless
// verbose is set.
func New(w io.Writer, verbose bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &Logger{log: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

func (l *Logger) Debug(msg string) { l.log.Debug(msg) }

func (l *Logger) Info(msg string) { l.log.Info(msg) }

func (l *Logger) Error(err error) {
	l.log.Error("operation failed", "error", err)
}
