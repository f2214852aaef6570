package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"listkit/internal/config"
)

// NewInitCmd creates the init command, which writes the default config
func NewInitCmd() *cobra.Command {
	var (
		force  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with default values",
		Long: `Writes the default listbox settings and a sample list of options.

Without a path the file is written to ./.listkit.toml, or ./.listkit.yaml with
--format yaml. The encoding follows the file extension.`,
		Example: `  # Create ./.listkit.toml
  listkit init

  # Create a YAML config somewhere else, overwriting it if present
  listkit init --force ~/.config/listkit/config.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			var path string
			switch {
			case len(args) == 1:
				path = args[0]
				if cmd.Flags().Changed("format") && config.FormatFor(path) != f {
					return fmt.Errorf("--format %s does not match the extension of %s", f, path)
				}
			case f == config.FormatYAML:
				path = config.LocalYAMLFile
			default:
				path = config.LocalFile
			}

			// Check if config already exists and force isn't set
			if !force {
				if _, err := os.Stat(path); err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", path, err)
				}
			}

			svc := config.NewConfigService(path)
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().StringVar(&format, "format", "toml", "file format when no path is given: toml or yaml")

	return cmd
}
