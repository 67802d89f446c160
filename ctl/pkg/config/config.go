package config

import (
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/vfsemu/vfsemu/common/logger"
)

// Viper keys for the global config. Should be used when accessing it instead of raw strings.
// Currently these are also used by the frontend for command line flag and env variable names.
const (
	// The serialized tree to load at startup. If empty the default tree is used.
	VfsKey = "vfs"
	// The prompt printed before each command line.
	PromptKey = "prompt"
	// A file with one command per line that is executed before the interactive loop starts.
	ScriptKey = "script"
	// An optional config file in any format supported by Viper.
	ConfigKey = "config"
	// Print the effective configuration at startup and additional details in some commands.
	DebugKey = "debug"
	// Prints values in their raw, base form, without adding units and IEC prefixes.
	RawKey = "raw"
	// Set the log level (0 - least verbosity, 5 - highest verbosity).
	LogLevelKey = "log-level"
	// Sets up a reasonable default development logging configuration. Logging is enabled at
	// DebugLevel and above, and uses a console encoder. Logs are written to standard error.
	// Stacktraces are included on logs of WarnLevel and above. DPanicLevel logs will panic.
	LogDeveloperKey = "log-developer"
	// Write logs to this file instead of stderr. The file is rotated once it reaches the max size.
	LogFileKey = "log-file"
	// The size in megabytes after which the log file is rotated.
	LogMaxSizeKey = "log-max-size"
	// The number of rotated log files to keep.
	LogNumRotatedFilesKey = "log-num-rotated-files"
)

// Keys returns all global config keys in the order they should be printed.
func Keys() []string {
	return []string{
		VfsKey,
		PromptKey,
		ScriptKey,
		ConfigKey,
		DebugKey,
		RawKey,
		LogLevelKey,
		LogDeveloperKey,
		LogFileKey,
		LogMaxSizeKey,
		LogNumRotatedFilesKey,
	}
}

var globalFs afero.Fs = afero.NewOsFs()

// GetFs returns the file system serialized trees and scripts are read from. This is the OS file
// system unless it was replaced with SetFs (typically with an afero.MemMapFs in tests).
func GetFs() afero.Fs {
	return globalFs
}

// SetFs replaces the file system returned by GetFs.
func SetFs(fsys afero.Fs) {
	globalFs = fsys
}

var globalLogger *logger.Logger

// Returns a global logger that logs to stderr, or to the configured log file. Don't rely solely
// on the logger to communicate errors to the user, the default level only lets fatal messages
// through so log messages never interleave with command output. The logger DOES NOT replace the
// need to return errors. Generally you should only log if you are going to ignore an error, or
// want to log additional information that would not be communicated by returning an error. Don't
// log and return the same error, this just results in the same error being reported twice.
//
// Note when getting the logger unless there is a bug in the logging implementation errors are
// unlikely and can usually be ignored for interactive tools where a panic due to the logger being
// nil is acceptable.
func GetLogger() (*logger.Logger, error) {
	var err error
	var invalidLogLevel = false
	if globalLogger == nil {
		logLevel := viper.GetInt(LogLevelKey)
		if logLevel < 0 || logLevel > 5 {
			// If the user gave an invalid log level ignore it and set logging to the highest
			// verbosity. This means we can generally always return a valid logger so most callers
			// don't need to check for an error from GetLogger().
			logLevel = 5
			invalidLogLevel = true
		}
		cfg := logger.Config{
			Level:     int8(logLevel),
			Type:      logger.StdErr,
			Developer: viper.GetBool(LogDeveloperKey),
		}
		if file := viper.GetString(LogFileKey); file != "" {
			cfg.Type = logger.LogFile
			cfg.File = file
			cfg.MaxSize = viper.GetInt(LogMaxSizeKey)
			cfg.NumRotatedFiles = viper.GetInt(LogNumRotatedFilesKey)
		}
		globalLogger, err = logger.New(cfg)
		if err != nil {
			return nil, err
		}
		if invalidLogLevel {
			globalLogger.Debug("enabling debug logging and ignoring user provided log level (was not in the range 0-5)")
		}
	}
	return globalLogger, nil
}

// Cleanup flushes any buffered log entries. It should be called before the application exits.
func Cleanup() {
	if globalLogger != nil {
		globalLogger.Sync()
		globalLogger = nil
	}
}
