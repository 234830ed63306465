package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Plugin is one destination for log entries.
type Plugin = zapcore.Core

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

func NewPlugin(writer zapcore.WriteSyncer, enc zapcore.Encoder, enabler zapcore.LevelEnabler) Plugin {
	return zapcore.NewCore(enc, writer, enabler)
}

// NewStderrPlugin logs to w, or to stderr when w is nil. Stdout is left to the
// artifact.
func NewStderrPlugin(w zapcore.WriteSyncer, format string, enabler zapcore.LevelEnabler) Plugin {
	if w == nil {
		w = zapcore.Lock(zapcore.AddSync(os.Stderr))
	}

	return NewPlugin(w, encoder(format), enabler)
}

// NewFilePlugin always writes JSON. Lumberjack has no Sync, so the returned
// closer must be closed before exit or the tail of the log is lost.
func NewFilePlugin(path string, enabler zapcore.LevelEnabler) (Plugin, io.Closer) {
	w := rotation(path)

	return NewPlugin(zapcore.AddSync(w), encoder(FormatJSON), enabler), w
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(cfg)
	}

	return zapcore.NewJSONEncoder(cfg)
}

// capture logs are small: 10mb files, five compressed backups
func rotation(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 5,
		LocalTime:  true,
		Compress:   true,
	}
}
