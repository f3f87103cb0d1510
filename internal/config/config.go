// Package config provides YAML-based configuration loading and difficulty
// management for the multitask host.
package config

// Config is the full, user-tunable configuration.
type Config struct {
	Engine      EngineConfig      `yaml:"engine"`
	CatchSquare CatchSquareConfig `yaml:"catchsquare"`
	WhacAMole   WhacAMoleConfig   `yaml:"whacamole"`
	Test        TestConfig        `yaml:"test"`
	TUI         TUIConfig         `yaml:"tui"`
}

// EngineConfig controls the game loop.
type EngineConfig struct {
	FramePeriodMs        int64    `yaml:"frame_period_ms"`        // Minimum frame period
	AdmissionThresholdMs int64    `yaml:"admission_threshold_ms"` // Session time between minigame admissions
	Slots                []string `yaml:"slots"`                  // Minigame IDs in admission order
	ShowInstructions     bool     `yaml:"show_instructions"`      // Pause and show instructions on admission
}

// ArenaConfig is the logical play field size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CatchSquareConfig tunes the CatchTheSquare minigame.
type CatchSquareConfig struct {
	Arena            ArenaConfig      `yaml:"arena"`
	CircleRadius     float64          `yaml:"circle_radius"`
	CircleSpeed      float64          `yaml:"circle_speed"` // Units per millisecond
	BombSide         float64          `yaml:"bomb_side"`
	SpawnPeriodS     int64            `yaml:"spawn_period_s"`
	BombTimerMs      int64            `yaml:"bomb_timer_ms"`
	MinBombTimerMs   int64            `yaml:"min_bomb_timer_ms"`
	MaxSpawnAttempts int              `yaml:"max_spawn_attempts"`
	Difficulty       DifficultyConfig `yaml:"difficulty"`
}

// WhacAMoleConfig tunes the Whac-a-Mole minigame.
type WhacAMoleConfig struct {
	Arena         ArenaConfig      `yaml:"arena"`
	Rows          int              `yaml:"rows"`
	Cols          int              `yaml:"cols"`
	HoleRadius    float64          `yaml:"hole_radius"`
	BaseMoles     int              `yaml:"base_moles"`      // Moles in the first level
	MolesPerLevel int              `yaml:"moles_per_level"` // Extra moles per following level
	IntervalMs    int64            `yaml:"interval_ms"`     // Time between appearances
	MinIntervalMs int64            `yaml:"min_interval_ms"`
	UpWindowMs    int64            `yaml:"up_window_ms"` // Time a mole stays up before it is missed
	MinUpWindowMs int64            `yaml:"min_up_window_ms"`
	Difficulty    DifficultyConfig `yaml:"difficulty"`
}

// TestConfig tunes the test minigame.
type TestConfig struct {
	Arena        ArenaConfig `yaml:"arena"`
	CircleRadius float64     `yaml:"circle_radius"`
	CircleSpeed  float64     `yaml:"circle_speed"`
	BallRadius   float64     `yaml:"ball_radius"`
	BallSpeed    float64     `yaml:"ball_speed"`
}

// TUIConfig tunes the terminal view.
type TUIConfig struct {
	FPS       int   `yaml:"fps"`         // Redraw rate
	KeyHoldMs int64 `yaml:"key_hold_ms"` // How long a key press keeps a direction active
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int64  `yaml:"max_at"` // Score or milliseconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
// Each value is the fraction removed from a base duration at max difficulty.
type ScalingConfig struct {
	TimerReduction    float64 `yaml:"timer_reduction"`
	IntervalReduction float64 `yaml:"interval_reduction"`
	WindowReduction   float64 `yaml:"window_reduction"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
