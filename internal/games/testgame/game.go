// Package testgame implements a minigame that never ends: a player circle
// and a ball bouncing around the arena. It is handy for trying out the host
// and the view.
package testgame

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/mtsk/internal/config"
	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/gameobject"
	"github.com/vovakirdan/mtsk/internal/registry"
)

// ID is the registry identifier.
const ID = "test"

// Game implements the test minigame.
type Game struct {
	bounds  core.Bounds
	circle  *gameobject.Circle
	ball    *gameobject.Ball
	objects []gameobject.GameObject
}

// New creates the test minigame. The ball starts in a random direction.
func New(cfg config.TestConfig, seed int64) *Game {
	bounds := core.NewBounds(cfg.Arena.Width, cfg.Arena.Height)
	rng := rand.New(rand.NewSource(seed))

	angle := rng.Float64() * 2 * math.Pi
	vel := core.Vector2D{DX: math.Cos(angle), DY: math.Sin(angle)}.Scale(cfg.BallSpeed)

	circle := gameobject.NewCircle(core.Point2D{X: bounds.Width() / 4, Y: bounds.Height() / 2}, cfg.CircleRadius, cfg.CircleSpeed)
	ball := gameobject.NewBall(core.Point2D{X: bounds.Width() * 3 / 4, Y: bounds.Height() / 2}, vel, cfg.BallRadius)

	return &Game{
		bounds:  bounds,
		circle:  circle,
		ball:    ball,
		objects: []gameobject.GameObject{circle, ball},
	}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this minigame.
func (g *Game) Title() string {
	return "Test"
}

// Bounds returns the arena.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Compute advances both objects.
func (g *Game) Compute(elapsed int64) {
	for _, obj := range g.objects {
		obj.UpdatePhysics(elapsed, g)
	}
}

// IsGameOver always returns false.
func (g *Game) IsGameOver() bool {
	return false
}

// GameObjects returns the circle and the ball.
func (g *Game) GameObjects() []gameobject.GameObject {
	return slices.Clone(g.objects)
}

// Register the minigame with the registry
func init() {
	registry.Register(ID, func(env registry.Env) registry.Minigame {
		return New(env.Config.Test, env.Runtime.Seed)
	})
}
