package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default config YAML",
	Long: `Print the built-in configuration. Save it as
~/.flappy/configs/flappy.yaml or ./configs/flappy.yaml and edit the keys you
want to change; missing keys keep their defaults.

Examples:
  flappy defaults > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
