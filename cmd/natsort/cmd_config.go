package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect natsort settings",
		Long: `Show or save the effective natsort settings.

Settings resolve, highest first, from flags, NATSORT_* environment
variables, the settings file and the defaults.

Examples:
  natsort config show                  # effective settings as TOML
  natsort config show --sources        # where each value came from
  NATSORT_SAFE_MODE=true natsort config save natsort.yaml`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigSaveCmd(),
	)

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			sources, _ := cmd.Flags().GetBool("sources")
			if sources {
				_, err := fmt.Fprint(cmd.OutOrStdout(), cfg.Debug())
				return err
			}
			return cfg.Dump(cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("sources", false, "Show the value each source provided")
	return cmd
}

func newConfigSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save FILE",
		Short: "Write the effective settings to FILE (TOML, JSON or YAML by extension)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Save(args[0]); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved settings to %s\n", args[0])
			return nil
		},
	}
}
