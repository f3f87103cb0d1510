package autopilot

import (
	"testing"

	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/engine"
	"github.com/vovakirdan/mtsk/internal/gameobject"
)

func player(x, y float64) gameobject.Aspect {
	return gameobject.Aspect{Kind: gameobject.KindPlayer, Shape: gameobject.ShapeCircle, Center: core.Point2D{X: x, Y: y}, Size: 100}
}

func bomb(x, y float64, lost bool) gameobject.Aspect {
	return gameobject.Aspect{Kind: gameobject.KindBomb, Shape: gameobject.ShapeSquare, Center: core.Point2D{X: x, Y: y}, Size: 150, Color: core.Blue(), HasColor: true, Lost: lost}
}

func mole(hole int, hidden bool) gameobject.Aspect {
	return gameobject.Aspect{Kind: gameobject.KindMole, Label: string(rune('1' + hole)), Hidden: hidden, Color: core.Brown(), HasColor: true}
}

func TestSteerTowardsNearestLiveBomb(t *testing.T) {
	in := core.NewInput()
	p := New(in, nil, 0)

	p.Render(engine.Snapshot{Panels: []engine.Panel{{
		Objects: []gameobject.Aspect{
			player(800, 450),
			bomb(100, 450, true), // Expired, ignored
			bomb(1200, 100, false),
			bomb(1500, 800, false),
		},
	}}})

	s := in.State()
	if !s.Right || s.Left || !s.Up || s.Down {
		t.Errorf("State() = %+v, expected up-right", s)
	}
}

func TestSteerReleasesWithoutTarget(t *testing.T) {
	in := core.NewInput()
	in.SetMove(core.DirLeft, true)
	p := New(in, nil, 0)

	p.Render(engine.Snapshot{Panels: []engine.Panel{{Objects: []gameobject.Aspect{player(10, 10)}}}})
	if s := in.State(); s.Left {
		t.Errorf("State() = %+v, expected no movement", s)
	}
}

func TestWhackAfterReaction(t *testing.T) {
	in := core.NewInput()
	p := New(in, nil, 200)

	frame := func(ms int64, objs ...gameobject.Aspect) {
		p.Render(engine.Snapshot{Elapsed: ms, Panels: []engine.Panel{{Objects: objs}}})
	}

	frame(1000, mole(3, false), mole(5, true))
	if s := in.Poll(); s.Hit {
		t.Fatalf("hit before reaction time: %+v", s)
	}

	frame(1100, mole(3, false), mole(5, false))
	if s := in.Poll(); s.Hit {
		t.Fatalf("hit before reaction time: %+v", s)
	}

	frame(1200, mole(3, false), mole(5, false))
	if s := in.Poll(); !s.Hit || s.HitHole != 3 {
		t.Errorf("Poll() = %+v, expected hit on the oldest mole (hole 3)", s)
	}

	// Hole 3 gone, hole 5 has been up since 1100
	frame(1300, mole(5, false))
	if s := in.Poll(); !s.Hit || s.HitHole != 5 {
		t.Errorf("Poll() = %+v, expected hit on hole 5", s)
	}
}

type recordingView struct {
	renders, overs, messages int
}

func (v *recordingView) Render(engine.Snapshot) { v.renders++ }
func (v *recordingView) RenderGameOver(int64)   { v.overs++ }
func (v *recordingView) ShowMessage(string)     { v.messages++ }

func TestForwardsToWrappedView(t *testing.T) {
	next := &recordingView{}
	p := New(core.NewInput(), next, 0)

	p.Render(engine.Snapshot{})
	p.ShowMessage("x")
	p.RenderGameOver(1)

	if next.renders != 1 || next.messages != 1 || next.overs != 1 {
		t.Errorf("forwarded = %+v, expected one of each", *next)
	}
}

func TestMissedMoleIsNotWhacked(t *testing.T) {
	in := core.NewInput()
	p := New(in, nil, 0)

	missed := mole(4, false)
	missed.Lost = true
	p.Render(engine.Snapshot{Elapsed: 100, Panels: []engine.Panel{{Objects: []gameobject.Aspect{missed}}}})
	p.Render(engine.Snapshot{Elapsed: 200, Panels: []engine.Panel{{Objects: []gameobject.Aspect{missed}}}})

	if s := in.Poll(); s.Hit {
		t.Errorf("Poll() = %+v, expected no hit on a missed mole", s)
	}
}
