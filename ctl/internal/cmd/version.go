package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfsemu/vfsemu/ctl/pkg/config"
)

var (
	BinaryName = "vfsemu"
	Version    = "local-build"
	Commit     = "unknown"
	BuildTime  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the emulator version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s | Commit %s | Built: %s\n", Version, Commit, BuildTime)

		if viper.GetBool(config.DebugKey) {
			fmt.Fprintln(cmd.OutOrStdout(), "\nDebug Info:")
			fmt.Fprintf(cmd.OutOrStdout(), "* Built with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		}
	},
}
