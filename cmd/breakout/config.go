package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the built-in default config as YAML. Save it to
~/.arcade/configs/breakout.yaml or ./configs/breakout.yaml to customise the game.

With --effective, print the config a new game would use after applying
--config and --difficulty.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config instead of the default")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagEffective {
		data := config.GetDefaultYAML("breakout")
		if data == nil {
			return fmt.Errorf("no default config for breakout")
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return enc.Close()
}
