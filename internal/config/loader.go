package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.mtsk/config.yaml -> ./configs/mtsk.yaml -> embedded default.
// Files are overlaid onto the defaults, so partial files are valid.
// A broken file in the search path is skipped with a warning on logger
// (nil discards it); a broken customPath is an error.
func Load(customPath string, logger *log.Logger) (Config, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "mtsk.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("cannot read config, skipping", "path", path, "err", err)
			}
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			logger.Warn("invalid config, skipping", "path", path, "err", err)
			continue
		}
		logger.Debug("config loaded", "path", path)
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse overlays YAML data onto the built-in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mtsk", filename)
}

// Validate reports every value that would make the host misbehave.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Engine.FramePeriodMs > 0, "engine.frame_period_ms must be positive, got %d", c.Engine.FramePeriodMs)
	check(c.Engine.AdmissionThresholdMs >= 0, "engine.admission_threshold_ms must not be negative, got %d", c.Engine.AdmissionThresholdMs)
	check(len(c.Engine.Slots) > 0, "engine.slots must name at least one minigame")

	cs := c.CatchSquare
	checkArena(check, "catchsquare", cs.Arena)
	check(cs.CircleRadius > 0, "catchsquare.circle_radius must be positive")
	check(cs.BombSide > 0, "catchsquare.bomb_side must be positive")
	check(cs.BombSide < cs.Arena.Width && cs.BombSide < cs.Arena.Height, "catchsquare.bomb_side must fit inside the arena")
	check(cs.SpawnPeriodS > 0, "catchsquare.spawn_period_s must be positive")
	check(cs.BombTimerMs > 0, "catchsquare.bomb_timer_ms must be positive")
	check(cs.MinBombTimerMs > 0 && cs.MinBombTimerMs <= cs.BombTimerMs, "catchsquare.min_bomb_timer_ms must be in (0, bomb_timer_ms]")
	check(cs.MaxSpawnAttempts > 0, "catchsquare.max_spawn_attempts must be positive")
	checkDifficulty(check, "catchsquare", cs.Difficulty)

	wm := c.WhacAMole
	checkArena(check, "whacamole", wm.Arena)
	check(wm.Rows > 0 && wm.Cols > 0 && wm.Rows*wm.Cols <= 9, "whacamole needs between 1 and 9 holes, got %dx%d", wm.Rows, wm.Cols)
	check(wm.HoleRadius > 0, "whacamole.hole_radius must be positive")
	check(wm.BaseMoles > 0, "whacamole.base_moles must be positive")
	check(wm.MolesPerLevel >= 0, "whacamole.moles_per_level must not be negative")
	check(wm.MinIntervalMs > 0 && wm.MinIntervalMs <= wm.IntervalMs, "whacamole.min_interval_ms must be in (0, interval_ms]")
	check(wm.MinUpWindowMs > 0 && wm.MinUpWindowMs <= wm.UpWindowMs, "whacamole.min_up_window_ms must be in (0, up_window_ms]")
	checkDifficulty(check, "whacamole", wm.Difficulty)

	checkArena(check, "test", c.Test.Arena)
	check(c.Test.CircleRadius > 0 && c.Test.BallRadius > 0, "test radii must be positive")

	check(c.TUI.FPS > 0, "tui.fps must be positive, got %d", c.TUI.FPS)
	check(c.TUI.KeyHoldMs > 0, "tui.key_hold_ms must be positive, got %d", c.TUI.KeyHoldMs)

	return errors.Join(errs...)
}

func checkArena(check func(bool, string, ...any), name string, a ArenaConfig) {
	check(a.Width > 0 && a.Height > 0, "%s.arena must have a positive size, got %gx%g", name, a.Width, a.Height)
}

func checkDifficulty(check func(bool, string, ...any), name string, d DifficultyConfig) {
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1, "%s.difficulty.initial_level must be in [0, 1]", name)
	switch d.Progression.Type {
	case "score", "time", "none":
	default:
		check(false, "%s.difficulty.progression.type must be score, time or none, got %q", name, d.Progression.Type)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	for _, d := range []*DifficultyConfig{&cfg.CatchSquare.Difficulty, &cfg.WhacAMole.Difficulty} {
		if preset == DifficultyFixed {
			d.Enabled = false
		} else {
			d.Enabled = true
			d.InitialLevel = InitialLevelForPreset(preset)
		}
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.CatchSquare.BombTimerMs = 14000
		cfg.WhacAMole.UpWindowMs = 3000
	case DifficultyHard:
		cfg.CatchSquare.BombTimerMs = 8000
		cfg.WhacAMole.UpWindowMs = 1600
	}
}
