// mtsk is a multitask arcade: several minigames run side by side in the
// terminal and the session ends as soon as any one of them is lost.
//
// Usage:
//
//	mtsk play [minigame...]  - Play a session (default slots from config)
//	mtsk simulate            - Run a session headless with the autopilot
//	mtsk list                - List available minigames
//	mtsk config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--seed <value>       - RNG seed for reproducible sessions
//	--log-file <path>    - Write logs to a file
//	--verbose            - Enable debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	// Import minigames to register them
	_ "github.com/vovakirdan/mtsk/internal/games/catchsquare"
	_ "github.com/vovakirdan/mtsk/internal/games/testgame"
	_ "github.com/vovakirdan/mtsk/internal/games/whacamole"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mtsk",
	Short: "mtsk - keep several minigames alive at once",
	Long: `mtsk runs minigames side by side in your terminal. A new minigame
joins every few seconds and the session is over the moment any of them is
lost. Your score is how long you lasted.

Available commands:
  play      - Play a session
  simulate  - Run a session without a terminal
  list      - Show all available minigames
  config    - Print the effective configuration

Examples:
  mtsk play
  mtsk play catchsquare test
  mtsk play --difficulty hard
  mtsk simulate --duration 2m --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
