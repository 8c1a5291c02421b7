// breakout is a ball-and-paddle brick breaker for the terminal.
//
// Usage:
//
//	breakout play             - Play in the terminal
//	breakout simulate         - Run a headless game and log snapshots
//	breakout config           - Print the default or effective config
//	breakout list             - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <level>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker. Keep the ball in play with the
paddle and clear every brick to win.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless game with an autopilot
  config    - Print the game config
  list      - Show all available games

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml
  breakout simulate --seed 42 --ticks 5000
  breakout config > ~/.arcade/configs/breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// loadGameConfig validates the config flags and hands them to the game.
// It returns the config a new session will use.
func loadGameConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, err := config.LoadBreakoutPreset(flagConfig, preset)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(preset)
	return cfg, nil
}

// checkFPS rejects tick rates the ticker cannot use.
func checkFPS() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
