// Package whacamole implements Whac-a-Mole.
// Moles pop out of a grid of holes on a schedule; the player hits them with
// the number keys. A single missed mole ends the game.
package whacamole

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mtsk/internal/config"
	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/gameobject"
	"github.com/vovakirdan/mtsk/internal/registry"
)

// ID is the registry identifier.
const ID = "whacamole"

// Game implements the Whac-a-Mole minigame logic.
type Game struct {
	cfg        config.WhacAMoleConfig
	bounds     core.Bounds
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	holes   []*Hole
	centres []core.Point2D
	level   *Level

	total int64 // Accumulated compute time in ms
	hits  int
}

// New creates a Whac-a-Mole game and schedules the first level.
func New(cfg config.WhacAMoleConfig, seed int64) *Game {
	g := &Game{
		cfg:        cfg,
		bounds:     core.NewBounds(cfg.Arena.Width, cfg.Arena.Height),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
	}
	g.layoutHoles()
	g.startLevel(1)
	return g
}

// layoutHoles places rows×cols holes at the centres of an even grid.
func (g *Game) layoutHoles() {
	cellW := g.bounds.Width() / float64(g.cfg.Cols)
	cellH := g.bounds.Height() / float64(g.cfg.Rows)

	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			p := core.Point2D{
				X: g.bounds.MinX + cellW*(float64(c)+0.5),
				Y: g.bounds.MinY + cellH*(float64(r)+0.5),
			}
			g.centres = append(g.centres, p)
			g.holes = append(g.holes, NewHole(len(g.holes), p, g.cfg.HoleRadius))
		}
	}
}

func (g *Game) startLevel(n int) {
	count := g.cfg.BaseMoles + (n-1)*g.cfg.MolesPerLevel
	scaling := g.cfg.Difficulty.Scaling
	interval := g.difficulty.Shrink(g.cfg.IntervalMs, scaling.IntervalReduction, g.cfg.MinIntervalMs, g.hits, g.total)
	window := g.difficulty.Shrink(g.cfg.UpWindowMs, scaling.WindowReduction, g.cfg.MinUpWindowMs, g.hits, g.total)

	g.level = NewLevel(n, g.centres, count, interval, window, g.cfg.HoleRadius*0.8, g.rng)
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this minigame.
func (g *Game) Title() string {
	return "Whac-a-Mole"
}

// Bounds returns the arena.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Instructions is shown when the minigame is admitted.
func (g *Game) Instructions() string {
	return fmt.Sprintf("Whac-a-Mole\n\nMoles pop out of the %d holes.\n"+
		"Press the number shown on a hole (1-%d) to hit its mole.\n"+
		"Let one mole escape and the game is over.", len(g.holes), len(g.holes))
}

// Status returns the level and hit counter for the view.
func (g *Game) Status() string {
	return fmt.Sprintf("level %d  hits %d", g.level.Number(), g.hits)
}

// Compute advances every mole, drops the hit ones and moves to the next
// level once the current one is cleared.
func (g *Game) Compute(elapsed int64) {
	if elapsed < 0 {
		elapsed = 0
	}
	g.total += elapsed

	for _, m := range g.level.moles {
		m.UpdatePhysics(elapsed, g)
	}

	g.hits += g.level.dropHit()

	if g.level.Done() {
		g.startLevel(g.level.Number() + 1)
	}
}

// IsGameOver reports whether any mole was missed.
func (g *Game) IsGameOver() bool {
	for _, m := range g.level.moles {
		if m.IsGameOver() {
			return true
		}
	}
	return false
}

// GameObjects returns the holes followed by the current level's moles.
func (g *Game) GameObjects() []gameobject.GameObject {
	out := make([]gameobject.GameObject, 0, len(g.holes)+len(g.level.moles))
	for _, h := range g.holes {
		out = append(out, h)
	}
	for _, m := range g.level.moles {
		out = append(out, m)
	}
	return out
}

// Level returns the current level.
func (g *Game) Level() *Level {
	return g.level
}

// Hits returns the number of moles hit so far.
func (g *Game) Hits() int {
	return g.hits
}

// Holes returns the number of holes.
func (g *Game) Holes() int {
	return len(g.holes)
}

// Register the minigame with the registry
func init() {
	registry.Register(ID, func(env registry.Env) registry.Minigame {
		return New(env.Config.WhacAMole, env.Runtime.Seed)
	})
}
