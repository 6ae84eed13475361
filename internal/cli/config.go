package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgrid/pkg/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print or check style configuration files",
	}

	cmd.AddCommand(c.configDefaultCommand())
	cmd.AddCommand(c.configCheckCommand())

	return cmd
}

// configDefaultCommand creates the "config default" subcommand.
func (c *CLI) configDefaultCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the built-in configuration as TOML",
		Long: `Print the built-in configuration as TOML.

The output is a complete configuration file. Save it, edit the values you
want to change and pass it to render with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Default().Encode(cmd.OutOrStdout())
		},
	}
}

// configCheckCommand creates the "config check" subcommand.
func (c *CLI) configCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [config.toml]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			printSuccess("%s is valid", args[0])
			printKeyValue("font", fmt.Sprintf("%s %v/%v/%v", cfg.Style.FontFamily,
				cfg.Style.FontSizes.Large, cfg.Style.FontSizes.Medium, cfg.Style.FontSizes.Small))
			printKeyValue("palette", paletteLine(cfg.Style.Colors))
			m := cfg.Display.Margin
			printKeyValue("margin", fmt.Sprintf("%v %v %v %v", m.Top, m.Right, m.Bottom, m.Left))
			return nil
		},
	}
}
