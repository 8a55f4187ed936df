package main

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/natsort"
	"github.com/lixenwraith/natsort/config"
	"github.com/spf13/cobra"
)

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key STRING...",
		Short: "Print the natural sort key of each argument",
		Long: `Print the key natsort compares for each argument, one per line.

With --json each argument is parsed as a JSON value first, so arrays
produce nested keys.

Examples:
  natsort key num2 a-5.5e2b          # ("num", 2) then ("a", -550, "b")
  natsort key --safe_mode 43h7+3     # ("", 43, "h", 7, "", 3)
  natsort key --json '["a1", "a10"]' # (("a", 1), ("a", 10))`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			opts, err := settings.Options()
			if err != nil {
				return err
			}
			g, err := natsort.NewGenerator(opts)
			if err != nil {
				return err
			}

			jsonIn, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if !jsonIn {
					fmt.Fprintln(out, g.StringKey(arg))
					continue
				}

				var v any
				if err := json.Unmarshal([]byte(arg), &v); err != nil {
					return fmt.Errorf("invalid JSON argument %q: %w", arg, err)
				}
				key, err := g.KeyAny(v)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, key)
			}
			return nil
		},
	}

	config.AddSettingsFlags(cmd.Flags(), keyPaths...)
	cmd.Flags().Bool("json", false, "Parse each argument as a JSON value")

	return cmd
}
