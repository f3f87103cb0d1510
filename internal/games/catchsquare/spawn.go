package catchsquare

import (
	"github.com/vovakirdan/mtsk/internal/core"
)

// randSpawnPoint draws uniform points inside the arena minus half a bomb side
// and returns the first one at least 2×side away from every object.
// It gives up after MaxSpawnAttempts draws and reports false.
func (g *Game) randSpawnPoint() (core.Point2D, bool) {
	side := g.cfg.BombSide
	area := g.bounds.Inset(side / 2)
	minDist := 2 * side

	for attempt := 0; attempt < g.cfg.MaxSpawnAttempts; attempt++ {
		p := core.Point2D{
			X: area.MinX + g.rng.Float64()*area.Width(),
			Y: area.MinY + g.rng.Float64()*area.Height(),
		}
		if g.isFree(p, minDist) {
			return p, true
		}
	}
	return core.Point2D{}, false
}

// isFree checks that p keeps minDist from every object.
func (g *Game) isFree(p core.Point2D, minDist float64) bool {
	for _, obj := range g.objects {
		if obj.Coor().Distance(p) < minDist {
			return false
		}
	}
	return true
}
