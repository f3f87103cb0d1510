// Package autopilot plays a session by reading snapshots and writing the
// shared Input, the way a player at the keyboard would. It wraps another
// View so it sees every frame.
package autopilot

import (
	"math"
	"strconv"

	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/engine"
	"github.com/vovakirdan/mtsk/internal/gameobject"
)

// Pilot steers the player towards the nearest live bomb and hits the
// oldest visible mole once it has been up for the reaction time.
type Pilot struct {
	input    *core.Input
	next     engine.View
	reaction int64         // Milliseconds before reacting to a mole
	seen     map[int]int64 // Hole -> session time the mole was first seen
}

// New creates a pilot writing to input and forwarding frames to next.
func New(input *core.Input, next engine.View, reactionMs int64) *Pilot {
	return &Pilot{
		input:    input,
		next:     next,
		reaction: reactionMs,
		seen:     make(map[int]int64),
	}
}

// Render decides the next input, then forwards the frame.
func (p *Pilot) Render(s engine.Snapshot) {
	p.steer(s)
	p.whack(s)
	if p.next != nil {
		p.next.Render(s)
	}
}

// RenderGameOver forwards to the wrapped view.
func (p *Pilot) RenderGameOver(score int64) {
	if p.next != nil {
		p.next.RenderGameOver(score)
	}
}

// ShowMessage forwards to the wrapped view.
func (p *Pilot) ShowMessage(text string) {
	if p.next != nil {
		p.next.ShowMessage(text)
	}
}

// steer moves towards the live bomb nearest to the player.
func (p *Pilot) steer(s engine.Snapshot) {
	for _, panel := range s.Panels {
		player, ok := find(panel.Objects, gameobject.KindPlayer)
		if !ok {
			continue
		}

		target, found := nearestBomb(panel.Objects, player.Center)
		if !found {
			continue
		}

		dead := player.Size / 4
		dx := target.X - player.Center.X
		dy := target.Y - player.Center.Y
		p.input.SetMove(core.DirRight, dx > dead)
		p.input.SetMove(core.DirLeft, dx < -dead)
		p.input.SetMove(core.DirDown, dy > dead)
		p.input.SetMove(core.DirUp, dy < -dead)
		return
	}
	p.input.Release()
}

// whack hits the visible mole that has been up the longest.
func (p *Pilot) whack(s engine.Snapshot) {
	visible := make(map[int]bool)
	best, bestSince := core.NoHole, int64(math.MaxInt64)

	for _, panel := range s.Panels {
		for _, a := range panel.Objects {
			if a.Kind != gameobject.KindMole || a.Hidden || a.Lost {
				continue
			}
			n, err := strconv.Atoi(a.Label)
			if err != nil {
				continue
			}
			hole := n - 1
			visible[hole] = true
			since, ok := p.seen[hole]
			if !ok {
				since = s.Elapsed
				p.seen[hole] = since
			}
			if since < bestSince {
				best, bestSince = hole, since
			}
		}
	}

	for hole := range p.seen {
		if !visible[hole] {
			delete(p.seen, hole)
		}
	}

	if best != core.NoHole && s.Elapsed-bestSince >= p.reaction {
		p.input.Hit(best)
	}
}

func find(objs []gameobject.Aspect, kind gameobject.Kind) (gameobject.Aspect, bool) {
	for _, a := range objs {
		if a.Kind == kind {
			return a, true
		}
	}
	return gameobject.Aspect{}, false
}

func nearestBomb(objs []gameobject.Aspect, from core.Point2D) (core.Point2D, bool) {
	best, bestDist := core.Point2D{}, math.Inf(1)
	for _, a := range objs {
		if a.Kind != gameobject.KindBomb || a.Lost {
			continue
		}
		if d := from.Distance(a.Center); d < bestDist {
			best, bestDist = a.Center, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}
