// Logger provides the logging used by the emulator. It wraps zap so the log level can be changed
// after the application has started and so the log destination is picked from configuration
// instead of being hard coded in each command.
package logger

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a wrapper around zap.Logger. It allows different aspects of the Logger to be
// reconfigured after the application has started. Notably the log level.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// Config represents the configuration for a Logger.
type Config struct {
	Type            supportedLogTypes `mapstructure:"type"`
	File            string            `mapstructure:"file"`
	Level           int8              `mapstructure:"level"`
	MaxSize         int               `mapstructure:"max-size"`
	NumRotatedFiles int               `mapstructure:"num-rotated-files"`
	Developer       bool              `mapstructure:"developer"`
}

type supportedLogTypes string

const (
	// Logging to stderr is the default so log messages never mix with command output.
	StdErr  supportedLogTypes = "stderr"
	StdOut  supportedLogTypes = "stdout"
	LogFile supportedLogTypes = "logfile"
)

// SupportedLogTypes is a slice of supported log types. Any log types added in the future must be
// added to this slice. It is used for printing help text, for example if an invalid type is
// specified.
var SupportedLogTypes = []supportedLogTypes{
	StdErr,
	StdOut,
	LogFile,
}

// New returns new logger based on the provided configuration.
func New(newConfig Config) (*Logger, error) {

	logMgr := Logger{}

	// Use the opinionated Zap development configuration.
	// This notably gives us stack traces at warn and error levels.
	if newConfig.Developer {
		logMgr.level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = logMgr.level
		l, err := cfg.Build()
		if err != nil {
			return nil, err
		}
		logMgr.Logger = l
		return &logMgr, nil
	}

	zapConfig := zap.NewProductionEncoderConfig()
	zapConfig.TimeKey = "timestamp"
	zapConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapEncoder := zapcore.NewConsoleEncoder(zapConfig)

	// Keep a reference to the atomic level so it can be adjusted later.
	zapLevel, err := getLevel(newConfig.Level)
	if err != nil {
		return nil, err
	}
	logMgr.level = zap.NewAtomicLevelAt(zapLevel)

	var logDestination zapcore.WriteSyncer
	switch newConfig.Type {
	case StdErr, "":
		logDestination = zapcore.Lock(os.Stderr)
	case StdOut:
		logDestination = zapcore.Lock(os.Stdout)
	case LogFile:
		// Just being able to write to the provided log file is not sufficient if we want to
		// rotate log files. Make sure the directory selected for logging exists and we can write
		// to it.
		if err := ensureLogsAreWritable(newConfig.File); err != nil {
			return nil, err
		}
		logDestination = zapcore.AddSync(&lumberjack.Logger{
			Filename:   newConfig.File,
			MaxSize:    newConfig.MaxSize,
			MaxBackups: newConfig.NumRotatedFiles,
		})
	default:
		return nil, fmt.Errorf("unsupported log type: %s (supported types: %v)", newConfig.Type, SupportedLogTypes)
	}

	logMgr.Logger = zap.New(zapcore.NewCore(zapEncoder, logDestination, logMgr.level))
	return &logMgr, nil
}

// Configurer is used to get the logging configuration out of an arbitrary application
// configuration, typically by embedding Config in the application's config struct.
type Configurer interface {
	GetLoggingConfig() Config
}

// UpdateConfiguration dynamically updates supported aspects of the logger. Currently only the log
// level can be changed. The provided config is expected to satisfy the Configurer interface.
func (lm *Logger) UpdateConfiguration(newConfig any) error {

	configurer, ok := newConfig.(Configurer)
	if !ok {
		return fmt.Errorf("unable to get log configuration from the application configuration (most likely this indicates a bug and a report should be filed)")
	}

	newLogConfig := configurer.GetLoggingConfig()

	log := lm.Logger.With(zap.String("component", path.Base(reflect.TypeOf(Logger{}).PkgPath())))

	newLevel, err := getLevel(newLogConfig.Level)
	if err != nil {
		return err
	}

	if newLogConfig.Developer {
		newLevel = zapcore.DebugLevel
	}

	if lm.level.Level() != newLevel {
		lm.level.SetLevel(newLevel)
		log.Log(lm.level.Level(), "set log level", zap.Any("logLevel", lm.level.Level()))
	} else {
		log.Debug("no change to log level")
	}

	return nil
}

// getLevel maps the numeric log levels used on the command line to zap levels. Level 0 only lets
// fatal messages through which keeps the interactive output clean by default.
func getLevel(newLevel int8) (zapcore.Level, error) {
	switch newLevel {
	case 0:
		return zapcore.FatalLevel, nil
	case 1:
		return zapcore.ErrorLevel, nil
	case 2:
		return zapcore.WarnLevel, nil
	case 3:
		return zapcore.InfoLevel, nil
	case 4, 5:
		return zapcore.DebugLevel, nil
	default:
		// If we used zapcore.InvalidLevel we could cause a panic. So instead return a sane level
		// just in case something decides to ignore the error and use the level we return anyway.
		return zapcore.InfoLevel, fmt.Errorf("the provided log level (%d) is invalid (must be 0-5)", newLevel)
	}
}

// ensureLogsAreWritable verifies the directory of the log file exists and that a file can be
// created inside it. Lumberjack creates rotated files next to the log file, so write access to
// the log file alone is not enough.
func ensureLogsAreWritable(file string) error {
	if file == "" {
		return fmt.Errorf("a log file must be specified when logging to a file")
	}
	dir := filepath.Dir(file)
	stat, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("unable to access log directory %s: %w", dir, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("the log directory %s is not a directory", dir)
	}
	probe, err := os.CreateTemp(dir, ".log-probe-*")
	if err != nil {
		return fmt.Errorf("the log directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}
