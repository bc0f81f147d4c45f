// Package logger holds the process-wide zap logger and the named child loggers handed
// to the engine, the builder and their subsystems.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Component names used for child loggers. They appear in the "logger" column.
const (
	ComponentEngine   = "engine"
	ComponentBuilder  = "builder"
	ComponentLoader   = "loader"
	ComponentProfiler = "profiler"
)

// Log is the global logger. It discards everything until Init is called.
var Log = zap.NewNop()

// Sugar is the sugared form of Log.
var Sugar = Log.Sugar()

// FileConfig controls the rotating log file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns rotation settings for a log file at path: 20 MB per file,
// three backups kept for a week, compressed.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  20,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Init replaces the global logger with one writing to stdout and, when logFile is set,
// to a rotating file.
//
// Parameters:
//   - level: a zap level name such as "debug" or "warn"; empty means info
//   - logFile: the log file path, or empty for console only
//
// Returns:
//   - error: if level is not a zap level
func Init(level string, logFile string) error {
	var fileCfg FileConfig
	if logFile != "" {
		fileCfg = DefaultFileConfig(logFile)
	}
	return InitWithFileConfig(level, fileCfg, true)
}

// InitWithFileConfig is Init with explicit rotation settings. Tests pass
// consoleOutput false to keep stdout clean.
func InitWithFileConfig(level string, fileCfg FileConfig, consoleOutput bool) error {
	l, err := New(level, fileCfg, consoleOutput)
	if err != nil {
		return err
	}
	Log = l
	Sugar = Log.Sugar()
	return nil
}

// New builds a logger without touching the globals.
//
// Parameters:
//   - level: a zap level name; empty means info
//   - fileCfg: file output, skipped when Path is empty
//   - consoleOutput: whether to write colored output to stdout
//
// Returns:
//   - *zap.Logger: the logger, a no-op one when there are no outputs
//   - error: if level is not a zap level
func New(level string, fileCfg FileConfig, consoleOutput bool) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core
	if consoleOutput {
		enc := encoderConfig(zapcore.TimeEncoderOfLayout("15:04:05"), zapcore.CapitalColorLevelEncoder)
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stdout), lvl))
	}
	if fileCfg.Path != "" {
		w := &lumberjack.Logger{
			Filename:   fileCfg.Path,
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
			LocalTime:  true,
		}
		enc := encoderConfig(zapcore.ISO8601TimeEncoder, zapcore.CapitalLevelEncoder)
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// encoderConfig is shared by the console and file cores; only time and level
// rendering differ.
func encoderConfig(timeEnc zapcore.TimeEncoder, levelEnc zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       timeEnc,
		EncodeLevel:      levelEnc,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return lvl, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Named returns a child of the global logger.
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// Engine returns the logger handed to engine.NewLibrary.
func Engine() *zap.Logger { return Named(ComponentEngine) }

// Builder returns the logger handed to builder.New.
func Builder() *zap.Logger { return Named(ComponentBuilder) }

// Loader returns the logger for model loading.
func Loader() *zap.Logger { return Named(ComponentBuilder).Named(ComponentLoader) }

// Profiler returns the logger handed to the frame profiler.
func Profiler() *zap.Logger { return Named(ComponentProfiler) }

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}

func Debug(msg string, fields ...zap.Field) { Log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Log.Error(msg, fields...) }
