// Package catchsquare implements CatchTheSquare.
// The player steers a circle onto bomb squares before their countdowns run
// out. A new bomb appears every spawn period; one expired bomb ends the game.
package catchsquare

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/mtsk/internal/config"
	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/gameobject"
	"github.com/vovakirdan/mtsk/internal/registry"
)

// ID is the registry identifier.
const ID = "catchsquare"

// Game implements the CatchTheSquare minigame logic.
type Game struct {
	cfg        config.CatchSquareConfig
	bounds     core.Bounds
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	circle  *gameobject.Circle
	objects []gameobject.GameObject // Circle first, then bombs in spawn order

	total   int64 // Accumulated compute time in ms
	spawned int64 // Bombs spawned so far
	caught  int   // Bombs resolved by the player
	skipped int   // Spawns abandoned because no free spot was found
}

// New creates a CatchTheSquare game with the circle in the arena centre.
func New(cfg config.CatchSquareConfig, seed int64) *Game {
	bounds := core.NewBounds(cfg.Arena.Width, cfg.Arena.Height)
	center := core.Point2D{X: bounds.Width() / 2, Y: bounds.Height() / 2}
	circle := gameobject.NewCircle(center, cfg.CircleRadius, cfg.CircleSpeed)

	return &Game{
		cfg:        cfg,
		bounds:     bounds,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		circle:     circle,
		objects:    []gameobject.GameObject{circle},
	}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this minigame.
func (g *Game) Title() string {
	return "Catch the Square"
}

// Bounds returns the arena.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Instructions is shown when the minigame is admitted.
func (g *Game) Instructions() string {
	return fmt.Sprintf("Catch the Square\n\nMove the circle with WASD or the arrow keys.\n"+
		"Touch every square before its countdown reaches zero.\n"+
		"A new square appears every %d seconds.", g.cfg.SpawnPeriodS)
}

// Status returns the counters for the view.
func (g *Game) Status() string {
	return fmt.Sprintf("caught %d  live %d", g.caught, len(g.objects)-1)
}

// Compute spawns due bombs, advances every object and resolves catches.
func (g *Game) Compute(elapsed int64) {
	if elapsed < 0 {
		elapsed = 0
	}
	g.total += elapsed

	if g.spawnDue() {
		g.spawnBomb()
	}

	for _, obj := range g.objects {
		obj.UpdatePhysics(elapsed, g)
	}

	g.resolveCatches()
}

// spawnDue reports whether the current second opens a spawn window that has
// not been served yet. Late frames catch up on the next window second, never
// twice in one tick.
func (g *Game) spawnDue() bool {
	period := g.cfg.SpawnPeriodS
	if (g.total/1000)%period != 0 {
		return false
	}
	return g.spawned < g.total/(period*1000)
}

func (g *Game) spawnBomb() {
	p, ok := g.randSpawnPoint()
	if !ok {
		g.skipped++
		return
	}
	timer := g.difficulty.Shrink(g.cfg.BombTimerMs, g.cfg.Difficulty.Scaling.TimerReduction,
		g.cfg.MinBombTimerMs, g.caught, g.total)
	g.objects = append(g.objects, gameobject.NewBombSquare(p, g.cfg.BombSide, core.Blue(), timer))
	g.spawned++
}

// resolveCatches removes every live bomb the circle touches.
// Expired bombs stay so that the game-over check still sees them.
func (g *Game) resolveCatches() {
	reach := g.circle.Radius() + g.cfg.BombSide/2
	g.objects = slices.DeleteFunc(g.objects, func(obj gameobject.GameObject) bool {
		b, ok := obj.(*gameobject.BombSquare)
		if !ok || b.Expired() {
			return false
		}
		if gameobject.Distance(g.circle, b) <= reach {
			g.caught++
			return true
		}
		return false
	})
}

// IsGameOver reports whether any bomb's countdown went negative.
func (g *Game) IsGameOver() bool {
	for _, obj := range g.objects {
		if b, ok := obj.(*gameobject.BombSquare); ok && b.Expired() {
			return true
		}
	}
	return false
}

// GameObjects returns a copy of the objects in insertion order.
func (g *Game) GameObjects() []gameobject.GameObject {
	return slices.Clone(g.objects)
}

// Circle returns the player circle.
func (g *Game) Circle() *gameobject.Circle {
	return g.circle
}

// Spawned returns the number of bombs spawned so far.
func (g *Game) Spawned() int64 {
	return g.spawned
}

// Caught returns the number of bombs the player resolved.
func (g *Game) Caught() int {
	return g.caught
}

// Skipped returns the number of spawns abandoned for lack of space.
func (g *Game) Skipped() int {
	return g.skipped
}

// Elapsed returns the accumulated compute time in ms.
func (g *Game) Elapsed() int64 {
	return g.total
}

// Register the minigame with the registry
func init() {
	registry.Register(ID, func(env registry.Env) registry.Minigame {
		return New(env.Config.CatchSquare, env.Runtime.Seed)
	})
}
