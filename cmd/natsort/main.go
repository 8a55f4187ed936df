package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/natsort/config"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "natsort",
		Short: "Natural-order sorting for humans",
		Long: `natsort sorts text the way people read it: "file2" before "file10",
"v1.9" before "v1.10".

Settings are layered: command-line flags, then NATSORT_* environment
variables, then a natsort.{toml,yaml,yml,json} settings file, then defaults.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Settings file (default: discovered natsort.toml)")
	config.AddSettingsFlags(rootCmd.PersistentFlags(), "log.level", "log.format")

	rootCmd.AddCommand(
		newSortCmd(),
		newKeyCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
