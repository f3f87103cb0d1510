package gameobject

import (
	"math"
	"testing"

	"github.com/vovakirdan/mtsk/internal/core"
)

const eps = 1e-9

type testArena struct {
	bounds core.Bounds
}

func (a testArena) Bounds() core.Bounds {
	return a.bounds
}

func near(a, b core.Point2D) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestBodyPhysicsDeterminism(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Point2D
		vel     core.Vector2D
		elapsed int64
	}{
		{"at rest", core.Point2D{X: 10, Y: 10}, core.NullVector(), 100},
		{"unit speed", core.Point2D{}, core.Vector2D{DX: 1, DY: 1}, 5},
		{"negative velocity", core.Point2D{X: 800, Y: 450}, core.Vector2D{DX: -0.8, DY: 0.3}, 16},
		{"zero elapsed", core.Point2D{X: 1, Y: 2}, core.Vector2D{DX: 3, DY: 4}, 0},
		{"long frame", core.Point2D{X: -50, Y: 20}, core.Vector2D{DX: 0.125, DY: -0.5}, 4000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expected := core.Point2D{
				X: tc.pos.X + tc.vel.DX*float64(tc.elapsed),
				Y: tc.pos.Y + tc.vel.DY*float64(tc.elapsed),
			}

			a := NewBody(KindBall, tc.pos, tc.vel, ShapeCircle, 1)
			b := NewBody(KindBall, tc.pos, tc.vel, ShapeCircle, 1)
			other := NewBody(KindBall, core.Point2D{}, core.Vector2D{DX: 9, DY: 9}, ShapeCircle, 1)

			// Call order relative to other objects must not matter
			a.UpdatePhysics(tc.elapsed, nil)
			other.UpdatePhysics(tc.elapsed, nil)
			other.UpdatePhysics(tc.elapsed, nil)
			b.UpdatePhysics(tc.elapsed, nil)

			if !near(a.Coor(), expected) {
				t.Errorf("UpdatePhysics() = %+v, expected %+v", a.Coor(), expected)
			}
			if a.Coor() != b.Coor() {
				t.Errorf("Determinism failed: %+v != %+v", a.Coor(), b.Coor())
			}
		})
	}
}

func TestBodyNegativeElapsedIsClamped(t *testing.T) {
	b := NewBody(KindBall, core.Point2D{X: 5, Y: 5}, core.Vector2D{DX: 1, DY: 1}, ShapeCircle, 1)
	b.UpdatePhysics(-20, nil)

	if b.Coor() != (core.Point2D{X: 5, Y: 5}) {
		t.Errorf("Negative elapsed should not move the body, got %+v", b.Coor())
	}
}

func TestBodyAspect(t *testing.T) {
	b := NewBody(KindBall, core.Point2D{X: 3, Y: 4}, core.NullVector(), ShapeSquare, 7)
	a := b.Aspect()
	if a.HasColor {
		t.Error("Body without WithColor should have no color")
	}
	if a.Kind != KindBall || a.Shape != ShapeSquare || a.Size != 7 || a.Center != b.Coor() {
		t.Errorf("Aspect() = %+v", a)
	}

	b.WithColor(core.Blue())
	if c, ok := b.Color(); !ok || c != core.Blue() {
		t.Errorf("Color() = %v, %v, expected blue", c, ok)
	}
}

func TestDistance(t *testing.T) {
	a := NewBody(KindBall, core.Point2D{}, core.NullVector(), ShapeCircle, 1)
	b := NewBody(KindBall, core.Point2D{X: 6, Y: 8}, core.NullVector(), ShapeCircle, 1)

	if d := Distance(a, b); d != 10 {
		t.Errorf("Distance() = %f, expected 10", d)
	}
}

func TestCircleInput(t *testing.T) {
	tests := []struct {
		name     string
		in       core.InputState
		expected core.Vector2D
	}{
		{"idle", core.InputState{}, core.Vector2D{}},
		{"right", core.InputState{Right: true}, core.Vector2D{DX: 0.5}},
		{"up", core.InputState{Up: true}, core.Vector2D{DY: -0.5}},
		{"opposites cancel", core.InputState{Left: true, Right: true}, core.Vector2D{}},
		{"diagonal sum", core.InputState{Down: true, Left: true}, core.Vector2D{DX: -0.5, DY: 0.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCircle(core.Point2D{X: 500, Y: 500}, 100, 0.5)
			c.UpdateInput(tc.in)
			if c.Velocity() != tc.expected {
				t.Errorf("Velocity() = %+v, expected %+v", c.Velocity(), tc.expected)
			}
		})
	}
}

func TestCircleStaysInArena(t *testing.T) {
	arena := testArena{bounds: core.NewBounds(1600, 900)}
	c := NewCircle(core.Point2D{X: 150, Y: 450}, 100, 1)

	c.UpdateInput(core.InputState{Left: true})
	c.UpdatePhysics(1000, arena)

	if c.Coor().X != 100 {
		t.Errorf("Circle X = %f, expected clamp at radius 100", c.Coor().X)
	}

	// Inside the arena the circle follows plain Euler integration
	c.UpdateInput(core.InputState{Right: true})
	c.UpdatePhysics(50, arena)
	if c.Coor().X != 150 {
		t.Errorf("Circle X = %f, expected 150", c.Coor().X)
	}
}

func TestBombSquareTimer(t *testing.T) {
	b := NewBombSquare(core.Point2D{X: 400, Y: 400}, 150, core.Black(), 1000)

	if b.Expired() {
		t.Fatal("New bomb should not be expired")
	}

	b.UpdatePhysics(600, nil)
	if b.Timer() != 400 {
		t.Errorf("Timer() = %d, expected 400", b.Timer())
	}
	if got := b.Aspect().Label; got != "1" {
		t.Errorf("Aspect().Label = %q, expected 1", got)
	}

	b.UpdatePhysics(400, nil)
	if b.Timer() != 0 || b.Expired() {
		t.Errorf("Timer at zero should not be expired, timer=%d", b.Timer())
	}

	b.UpdatePhysics(1, nil)
	if !b.Expired() {
		t.Error("Timer below zero should be expired")
	}
	if a := b.Aspect(); a.Color != core.Red() || !a.Lost {
		t.Errorf("expired Aspect() = %+v, expected red and lost", a)
	}

	// Bombs never move
	if b.Coor() != (core.Point2D{X: 400, Y: 400}) {
		t.Errorf("Bomb moved to %+v", b.Coor())
	}
}

func TestShapeString(t *testing.T) {
	if ShapeSquare.String() != "square" || ShapeCircle.String() != "circle" {
		t.Error("unexpected shape names")
	}
}

func TestBallBounces(t *testing.T) {
	arena := testArena{bounds: core.NewBounds(100, 100)}
	b := NewBall(core.Point2D{X: 80, Y: 50}, core.Vector2D{DX: 1, DY: 0}, 10)

	// Hits the right wall at x=90 and turns around
	b.UpdatePhysics(20, arena)
	if got := b.Coor().X; got != 90 {
		t.Errorf("Coor().X = %v, expected 90", got)
	}
	if got := b.Velocity().DX; got != -1 {
		t.Errorf("Velocity().DX = %v, expected -1", got)
	}

	b.UpdatePhysics(30, arena)
	if got := b.Coor().X; got != 60 {
		t.Errorf("Coor().X after bounce = %v, expected 60", got)
	}
}
