package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration a game would start with, after the config
file search and all flags are applied, as YAML.

Config search order:
  --config <path>
  ~/.snake/configs/snake.yaml
  ./configs/snake.yaml
  built-in default

Examples:
  snake config
  snake config -t 120 --portal
  snake config --default > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagShowDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	if err := setLogLevel(logger); err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd.Flags(), logger)
	if err != nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
