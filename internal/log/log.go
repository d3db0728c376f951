package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Level int

const (
	LevelInfo Level = iota
	LevelDebug
)

type Logger struct {
	level Level
	sl    *slog.Logger
}

// New returns a logger writing text records to out, or stderr when out is nil.
// Stdout is reserved for session output.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	threshold := slog.LevelInfo
	if level >= LevelDebug {
		threshold = slog.LevelDebug
	}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: threshold})
	return &Logger{level: level, sl: slog.New(h)}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return New(LevelInfo, io.Discard)
}

func (l *Logger) Infof(format string, args ...any) {
	l.logf(slog.LevelInfo, format, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.logf(slog.LevelDebug, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.logf(slog.LevelError, format, args...)
}

func (l *Logger) Level() Level {
	if l == nil {
		return LevelInfo
	}
	return l.level
}

func (l *Logger) logf(lvl slog.Level, format string, args ...any) {
	if l == nil || !l.sl.Enabled(context.Background(), lvl) {
		return
	}
	l.sl.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}
