package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/composable/internal/app"
	"github.com/dshills/composable/internal/config"
	"github.com/dshills/composable/internal/input/keymap"
)

func newKeysCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective key bindings",
		Long: `Print the default keymaps with the [keymap] section of the config file
applied. Bindings added by Lua plugins are not shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := app.LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			reg := keymap.NewRegistry()
			if err := keymap.LoadDefaults(reg); err != nil {
				return err
			}
			if err := cfg.ApplyKeymaps(reg); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, km := range reg.Keymaps() {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "[%s]\n", km.Name)
				for _, b := range km.Bindings() {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", b.Keys, b.Command, b.Description)
				}
			}
			return w.Flush()
		},
	}
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := app.LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			var f config.Format
			switch format {
			case "toml":
				f = config.FormatTOML
			case "yaml":
				f = config.FormatYAML
			default:
				return fmt.Errorf("%w: %q", config.ErrUnsupportedFormat, format)
			}
			if path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", path)
			}
			return cfg.Encode(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format (toml, yaml)")
	return cmd
}
