// Package registry provides a global registry for minigame factories.
// Minigames register themselves in init() functions, allowing the engine
// and the CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mtsk/internal/config"
	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/gameobject"
)

// Minigame is the capability set every minigame implements.
// Minigames contain pure logic with no external dependencies (especially no Bubble Tea).
// The engine handles input, timing and hands snapshots to the view.
type Minigame interface {
	// ID returns a unique identifier (e.g., "catchsquare").
	// Used for config slots and CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Bounds returns the logical arena in arena units.
	Bounds() core.Bounds

	// Compute advances the minigame by elapsed milliseconds.
	// Never called while the session is paused.
	Compute(elapsed int64)

	// IsGameOver reports whether this minigame has lost the session.
	IsGameOver() bool

	// GameObjects returns a copy of the owned objects in insertion order.
	GameObjects() []gameobject.GameObject
}

// Instructor is implemented by minigames that explain themselves on admission.
type Instructor interface {
	Instructions() string
}

// Reporter is implemented by minigames that expose a one-line status
// (counters, level) for the view.
type Reporter interface {
	Status() string
}

// Env carries everything a factory needs to build a minigame.
type Env struct {
	Config  config.Config
	Runtime core.RuntimeConfig
}

// DefaultEnv returns an Env built from the default configuration.
func DefaultEnv() Env {
	return Env{
		Config:  config.Default(),
		Runtime: core.DefaultConfig(),
	}
}

// MinigameInfo contains metadata about a registered minigame.
type MinigameInfo struct {
	ID    string
	Title string
}

// Factory creates a new minigame instance.
type Factory func(env Env) Minigame

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a minigame factory to the registry.
// Typically called from a minigame's init() function.
// Panics if a minigame with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: minigame %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(DefaultEnv()).Title()
}

// List returns information about all registered minigames, sorted by ID.
func List() []MinigameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MinigameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, MinigameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new minigame by its ID.
// Returns an error if the ID is not registered.
func Create(id string, env Env) (Minigame, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown minigame %q", id)
	}

	return f(env), nil
}

// Exists checks if a minigame with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Resolve creates one minigame per slot ID, failing on the first unknown ID.
// Each slot gets its own seed derived from the runtime seed so that two
// instances of the same minigame do not mirror each other.
func Resolve(ids []string, env Env) ([]Minigame, error) {
	out := make([]Minigame, 0, len(ids))
	for i, id := range ids {
		slotEnv := env
		slotEnv.Runtime.Seed = env.Runtime.Seed + int64(i)*7919
		m, err := Create(id, slotEnv)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}
