package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/engine"
	"github.com/vovakirdan/mtsk/internal/platform/autopilot"
	"github.com/vovakirdan/mtsk/internal/platform/headless"
)

var (
	flagDuration    time.Duration
	flagRealtime    bool
	flagNoAutopilot bool
	flagReaction    int64
	flagLogEvery    uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [minigame...]",
	Short: "Run a session without a terminal",
	Long: `Run a session headless. By default the autopilot plays and time is
simulated, so a long session finishes in moments. Logs go to stderr.

Examples:
  mtsk simulate
  mtsk simulate --duration 5m --seed 7
  mtsk simulate whacamole --reaction 600 --verbose
  mtsk simulate --realtime --no-autopilot`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Stop after this much session time (0 = until game over)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with the wall clock")
	simulateCmd.Flags().BoolVar(&flagNoAutopilot, "no-autopilot", false, "Do not play, just let time run")
	simulateCmd.Flags().Int64Var(&flagReaction, "reaction", 250, "Autopilot reaction time in ms")
	simulateCmd.Flags().Uint64Var(&flagLogEvery, "log-every", 200, "Log every Nth frame at debug level (0 = never)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slots, err := resolveSlots(cfg, args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logView := headless.NewLogView(logger, flagLogEvery)
	if flagDuration > 0 {
		logView.StopAfter(flagDuration.Milliseconds(), cancel)
	}

	input := core.NewInput()
	var view engine.View = logView
	if !flagNoAutopilot {
		view = autopilot.New(input, logView, flagReaction)
	}

	opts := engine.Options{
		Config: cfg.Engine,
		Slots:  slots,
		Input:  input,
		View:   view,
		Logger: logger,
	}
	// Simulated time: every pacing sleep advances the clock instantly
	if !flagRealtime {
		opts.Clock = engine.NewManualClock(time.Now())
	}

	eng, err := engine.New(opts)
	if err != nil {
		return err
	}
	logView.SetResumer(eng)

	runErr := eng.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	printSummary(eng, logView)
	return nil
}

func printSummary(eng *engine.Engine, v *headless.LogView) {
	last := v.Last()
	score, over := v.Result()

	fmt.Println()
	fmt.Printf("Session %s\n", eng.SessionID())
	if over {
		fmt.Printf("  Game over after %d.%03ds\n", score/1000, score%1000)
	} else {
		fmt.Printf("  Stopped after %d.%03ds, still alive\n", last.Elapsed/1000, last.Elapsed%1000)
	}
	fmt.Printf("  Frames: %d\n", last.Frame)
	fmt.Println()

	for _, p := range last.Panels {
		result := "ok"
		if p.GameOver {
			result = "LOST"
		}
		fmt.Printf("  %d. %-18s %-24s %s\n", p.Index+1, p.Title, p.Status, result)
	}
}
