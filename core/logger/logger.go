package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Usable before Init for early startup logging
	l, _ := zap.NewProduction()
	sugar = l.Sugar()
}

// Init configures the global logger.
// level: "debug", "info", "warn", "error" (default "info")
// format: "json" or "console" (default "json")
func Init(level string, format string) error {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	var config zap.Config
	if format == "console" {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	}

	base, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		base = base.With(zap.String("hostname", hostname))
	}
	sugar = base.Sugar()
	return nil
}

func Debug(msg string, args ...any) {
	sugar.Debugw(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	sugar.Infow(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	sugar.Warnw(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	sugar.Errorw(msg, normalize(args)...)
}

// normalize lets call sites pass either key/value pairs or a bare error.
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
		return []any{"detail", args[0]}
	}
	if len(args)%2 != 0 {
		return append(args, "(missing)")
	}
	return args
}

// Sync flushes buffered log entries.
func Sync() {
	_ = sugar.Sync()
}
