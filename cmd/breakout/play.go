package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagLogFile     string
	flagHoldInitial time.Duration
	flagHoldRepeat  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move the paddle
  Mouse            - Paddle follows the pointer
  R                - New game (after the game ends)
  Tab              - Session scores (after the game ends)
  Ctrl+S           - Save a text screenshot to ~/.arcade/screenshots
  ?                - More help
  Q/Esc/Ctrl+C     - Quit

Terminals report key presses but not releases, so a direction stays held
until the key stops repeating. Tune --hold-initial to your key repeat delay
and --hold-repeat to a little more than the repeat interval.

Examples:
  breakout play
  breakout play --difficulty hard --fps 30
  breakout play --log-file /tmp/breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	defaults := tui.DefaultOptions()
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().DurationVar(&flagHoldInitial, "hold-initial", defaults.HoldInitial, "Release a key not repeated within this time after the first press")
	playCmd.Flags().DurationVar(&flagHoldRepeat, "hold-repeat", defaults.HoldRepeat, "Release a repeating key after this much silence")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := checkFPS(); err != nil {
		return err
	}
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	logger, closeLog, err := playLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create("breakout")
	if err != nil {
		return err
	}

	// The scoreboard lives as long as this process.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open session scoreboard", "error", err)
	} else {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	opts := tui.Options{
		HoldInitial: flagHoldInitial,
		HoldRepeat:  flagHoldRepeat,
		Logger:      logger,
	}

	if err := tui.Run(game, store, cfg, opts); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// playLogger returns a logger for the interactive session. The alt screen
// owns the terminal, so logs go to a file or nowhere.
func playLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	return logger, func() { f.Close() }, nil
}
