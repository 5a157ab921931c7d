package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, as YAML.

The config is looked up in this order:
  1. --config path
  2. ~/.arcade/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. Embedded defaults

Examples:
  flappy config
  flappy config --config ./my-flappy.yaml
  flappy config --defaults > my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML(gameID))
		return err
	}

	cfg, source, err := config.LoadFlappyWithSource(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.MarshalFlappy(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
