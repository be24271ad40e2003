package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath == "" {
				return fmt.Errorf("no config directory available")
			}
			fmt.Fprintln(stdout, c.configPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Long: `Print the effective configuration as TOML.

The output merges the config file with built-in defaults and is itself a
valid config file:

  laserbox config show > ~/.config/laserbox/config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Config.Write(stdout)
		},
	})

	return cmd
}
