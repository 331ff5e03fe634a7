package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in this terminal",
	Long: `Start the game on the menu screen.

Controls:
  Arrows/WASD  - Steer
  Space/Enter  - Start / play again
  Esc          - Back to menu (quits from the menu)
  Tab          - Scoreboard (menu only)
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Scores are kept for this run only.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "name", "", "Player name for the scoreboard (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open()
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scoreboard", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	return tui.Run(store, logger, cfg.Runtime(width, height, flagSeed), player)
}
