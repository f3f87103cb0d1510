package core

// RuntimeConfig contains values passed to minigames at creation.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic spawning; 0 means time-based in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{Seed: 0}
}
