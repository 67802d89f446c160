package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfsemu/vfsemu/ctl/pkg/config"
)

// This package handles the global command line tool config - the global flags, environment
// variable bindings and config file handling.

// Defines all the global flags and binds them to the backends config singleton
func InitGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(config.VfsKey, "", `The XML file containing the tree to load at startup.
	If empty or if the file cannot be loaded, the built-in default tree is used.`)

	cmd.PersistentFlags().String(config.PromptKey, "vfs$ ", "The prompt printed before each command.")

	cmd.PersistentFlags().String(config.ScriptKey, "", `A file with one command per line to execute before reading commands interactively.
	Empty lines and lines starting with '#' are skipped. Execution stops at 'exit'.`)

	cmd.PersistentFlags().String(config.ConfigKey, "", "Read configuration from this file (any format supported by Viper, for example TOML, YAML or JSON).")

	cmd.PersistentFlags().Bool(config.DebugKey, false, "Print the effective configuration at startup.")

	cmd.PersistentFlags().Bool(config.RawKey, false, "Print raw sizes without IEC prefixes.")

	cmd.PersistentFlags().Int8(config.LogLevelKey, 0, `By default all logging is disabled except for fatal errors.
	Optionally additional logging to stderr can be enabled to assist with debugging (0=Fatal, 1=Error, 2=Warn, 3=Info, 4+5=Debug).`)

	cmd.PersistentFlags().Bool(config.LogDeveloperKey, false, "Enable logging at DebugLevel and above and print stack traces at WarnLevel and above.")
	cmd.PersistentFlags().MarkHidden(config.LogDeveloperKey)

	cmd.PersistentFlags().String(config.LogFileKey, "", "Write logs to this file instead of stderr.")
	cmd.PersistentFlags().Int(config.LogMaxSizeKey, 100, fmt.Sprintf("The size in megabytes after which the log file is rotated (requires --%s).", config.LogFileKey))
	cmd.PersistentFlags().Int(config.LogNumRotatedFilesKey, 5, fmt.Sprintf("The number of rotated log files to keep (requires --%s).", config.LogFileKey))

	// Environment variables should start with VFSEMU_
	viper.SetEnvPrefix("vfsemu")
	// Environment variables cannot use "-", replace with "_"
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Bind all persistent pflags to viper
	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		viper.BindEnv(flag.Name)
		viper.BindPFlag(flag.Name, flag)
	})
}

// ReadConfigFile merges the config file set with --config (if any) into the global config. Flags
// and environment variables still take precedence over values from the file.
func ReadConfigFile() error {
	file := viper.GetString(config.ConfigKey)
	if file == "" {
		return nil
	}
	viper.SetFs(config.GetFs())
	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("unable to read config file %s: %w", file, err)
	}
	return nil
}

func Cleanup() {
	config.Cleanup()
}
