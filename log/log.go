// Package log builds the process logger: stderr always, plus an optional
// rotated JSON file.
package log

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level  string // zap level name, any case; unknown means info
	Format string // FormatJSON or FormatConsole, for stderr only
	File   string // rotated log file, off when empty

	Stderr zapcore.WriteSyncer // nil means os.Stderr
}

// Logger owns the files its plugins write to.
type Logger struct {
	*zap.Logger
	closers []io.Closer
}

func New(cfg Config) *Logger {
	level := ParseLevel(cfg.Level, zapcore.InfoLevel)

	l := &Logger{}
	plugins := []Plugin{NewStderrPlugin(cfg.Stderr, cfg.Format, level)}
	if cfg.File != "" {
		p, c := NewFilePlugin(cfg.File, level)
		plugins = append(plugins, p)
		l.closers = append(l.closers, c)
	}

	l.Logger = zap.New(zapcore.NewTee(plugins...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.DPanicLevel),
	)

	return l
}

// Close flushes stderr and closes the log files.
func (l *Logger) Close() error {
	l.Logger.Sync()

	var err error
	for _, c := range l.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

// ParseLevel accepts zap level names in any case and falls back to def.
func ParseLevel(text string, def zapcore.Level) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(text)))
	if err != nil {
		return def
	}

	return level
}
