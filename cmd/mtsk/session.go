package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mtsk/internal/config"
	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/registry"
)

// loadConfig loads the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig, log.NewWithOptions(os.Stderr, log.Options{Prefix: "mtsk"}))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the session logger. fallback is used when no log file
// was requested. The returned closer must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mtsk",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// resolveSlots creates the minigames for a session. ids override the
// configured slots when given.
func resolveSlots(cfg config.Config, ids []string) ([]registry.Minigame, error) {
	if len(ids) == 0 {
		ids = cfg.Engine.Slots
	}
	for _, id := range ids {
		if !registry.Exists(id) {
			return nil, fmt.Errorf("unknown minigame %q, run 'mtsk list' to see available minigames", id)
		}
	}

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	return registry.Resolve(ids, registry.Env{Config: cfg, Runtime: rt})
}
