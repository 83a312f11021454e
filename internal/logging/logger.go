package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PEPPY_CFG_LOG_LEVEL"

// Rotation limits for the log file sink
const (
	maxLogSizeMB  = 5
	maxLogBackups = 3
)

// Options selects the level and sink of the global logger.
type Options struct {
	Level string // debug, info, warn, error; empty means silent
	File  string // rotating log file; empty means stderr
}

// Initialize creates a new logger with the specified options.
// If opts.Level is empty, it checks the PEPPY_CFG_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// The TUI owns stdout, so log output never goes there: it is written to
// opts.File through lumberjack, or to stderr when no file is configured.
func Initialize(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var sink io.Writer = os.Stderr
	if opts.File != "" {
		sink = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			LocalTime:  true,
		}
	}

	built, err := build(level, zapcore.AddSync(sink), opts.File == "")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built
	return nil
}

// build assembles a console-encoded core writing to ws.
// Colored levels are only used for terminal output.
func build(level string, ws zapcore.WriteSyncer, color bool) (*zap.Logger, error) {
	zapLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if color {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, zap.NewAtomicLevelAt(zapLevel))
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

// parseLevel maps a level name to a zap level.
// Unknown names fall back to info, since the user asked for output at all.
func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "":
		return zapcore.InfoLevel, fmt.Errorf("empty log level")
	default:
		return zapcore.InfoLevel, nil
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer cores.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSourceLoaded logs a successfully loaded data source
func LogSourceLoaded(source, path string, entries int) {
	Info("Source loaded",
		zap.String("source", source),
		zap.String("path", path),
		zap.Int("entries", entries),
	)
}

// LogStateUpdate logs a field change requested by a control
func LogStateUpdate(section, key string, value any) {
	Debug("State update",
		zap.String("section", section),
		zap.String("key", key),
		zap.Any("value", value),
	)
}

// LogSelection logs a tab or topic change
func LogSelection(what string, from, to int) {
	Debug("Selection changed",
		zap.String("what", what),
		zap.Int("from", from),
		zap.Int("to", to),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
