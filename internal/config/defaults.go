package config

import (
	_ "embed"
)

//go:embed defaults/mtsk.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/mtsk.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			FramePeriodMs:        5,
			AdmissionThresholdMs: 4000,
			Slots:                []string{"catchsquare", "whacamole"},
			ShowInstructions:     true,
		},
		CatchSquare: CatchSquareConfig{
			Arena:            ArenaConfig{Width: 1600, Height: 900},
			CircleRadius:     100,
			CircleSpeed:      0.6,
			BombSide:         150,
			SpawnPeriodS:     4,
			BombTimerMs:      10000,
			MinBombTimerMs:   5000,
			MaxSpawnAttempts: 64,
			Difficulty: DifficultyConfig{
				Enabled:      true,
				InitialLevel: 0.0,
				Progression:  ProgressionConfig{Type: "time", MaxAt: 120000},
				Scaling:      ScalingConfig{TimerReduction: 0.4},
			},
		},
		WhacAMole: WhacAMoleConfig{
			Arena:         ArenaConfig{Width: 1600, Height: 900},
			Rows:          3,
			Cols:          3,
			HoleRadius:    90,
			BaseMoles:     6,
			MolesPerLevel: 2,
			IntervalMs:    1400,
			MinIntervalMs: 500,
			UpWindowMs:    2200,
			MinUpWindowMs: 900,
			Difficulty: DifficultyConfig{
				Enabled:      true,
				InitialLevel: 0.0,
				Progression:  ProgressionConfig{Type: "score", MaxAt: 60},
				Scaling:      ScalingConfig{IntervalReduction: 0.5, WindowReduction: 0.4},
			},
		},
		Test: TestConfig{
			Arena:        ArenaConfig{Width: 1600, Height: 900},
			CircleRadius: 80,
			CircleSpeed:  0.6,
			BallRadius:   40,
			BallSpeed:    0.4,
		},
		TUI: TUIConfig{
			FPS:       30,
			KeyHoldMs: 180,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
