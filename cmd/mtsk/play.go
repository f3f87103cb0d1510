package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mtsk/internal/engine"
	"github.com/vovakirdan/mtsk/internal/platform/tui"
)

// Minimum terminal size for a readable two-panel layout
const (
	minTermWidth  = 60
	minTermHeight = 20
)

var playCmd = &cobra.Command{
	Use:   "play [minigame...]",
	Short: "Play a session",
	Long: `Start a session. Minigames join in the order given (or the order of
engine.slots in the config), one every admission threshold.

Controls:
  WASD/Arrows  - Move the circle
  1-9          - Hit the matching Whac-a-Mole hole
  P            - Pause
  Enter        - Dismiss a message
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Examples:
  mtsk play
  mtsk play whacamole
  mtsk play catchsquare test --difficulty easy`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return errors.New("play needs a terminal, use 'mtsk simulate' instead")
	}
	if width < minTermWidth || height < minTermHeight {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, at least %dx%d is recommended\n",
			width, height, minTermWidth, minTermHeight)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slots, err := resolveSlots(cfg, args)
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs only go to a file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	bridge := tui.NewBridge()
	eng, err := engine.New(engine.Options{
		Config: cfg.Engine,
		Slots:  slots,
		View:   bridge,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	err = tui.Play(cmd.Context(), eng, bridge, cfg.TUI)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
