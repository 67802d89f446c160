package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	cmdConfig "github.com/vfsemu/vfsemu/ctl/internal/config"
	"github.com/vfsemu/vfsemu/ctl/internal/util"
	"github.com/vfsemu/vfsemu/ctl/pkg/config"
)

// Main entry point of the tool
func Execute() int {
	// This is the first line of the root help message. This is generated/stored here to allow the
	// number of characters separating the header with the rest of the help text to be determined
	// dynamically since the version width may vary.
	longHelpHeader := fmt.Sprintf("Virtual File System Emulator: %s", Version)
	// The root command.
	cmd := &cobra.Command{
		Use:   BinaryName,
		Short: "An in-memory virtual file system emulator.",
		Long: fmt.Sprintf(`%s
%s
This tool emulates a small file system entirely in memory. The tree is loaded from an XML file
(or the built-in default tree is used) and can be explored and modified with ls, cd, pwd, wc,
find, cp, mv, mkdir and tree. Nothing is ever written back to disk.

* Run commands from a file with --%s before the interactive prompt starts.
* Type "help" at the prompt to list the available commands and "exit" to quit.
		`, longHelpHeader, strings.Repeat("=", len(longHelpHeader)), config.ScriptKey),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdConfig.ReadConfigFile(); err != nil {
				return util.NewCtlError(err, util.ConfigError)
			}
			if level := viper.GetInt(config.LogLevelKey); level < 0 || level > 5 {
				return util.NewCtlError(fmt.Errorf("the log level must be between 0 and 5 (provided: %d)", level), util.ConfigError)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			interactive := false
			if f, ok := in.(*os.File); ok {
				interactive = util.IsTerminal(f)
			}
			return runEmulator(cmd.Context(), in, cmd.OutOrStdout(), interactive)
		},
	}

	// Normalize flags to lowercase - makes the program accept case insensitive flags
	cmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		lowercaseFlagName := strings.ToLower(name)
		return pflag.NormalizedName(lowercaseFlagName)
	})

	// Initialize global config
	cmdConfig.InitGlobalFlags(cmd)
	defer cmdConfig.Cleanup()

	// Add subcommands
	cmd.AddCommand(versionCmd)

	// Parse the given parameters and execute the selected command
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		// If the command returned a util.CtlError with an included exit code, use this to exit the
		// program
		ctlError, ok := err.(util.CtlError)
		if ok {
			return ctlError.GetExitCode()
		}

		return 1
	}

	return 0
}
