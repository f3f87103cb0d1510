package testgame

import (
	"testing"

	"github.com/vovakirdan/mtsk/internal/config"
	"github.com/vovakirdan/mtsk/internal/core"
)

func TestNeverGameOver(t *testing.T) {
	g := New(config.Default().Test, 1)
	for i := 0; i < 1000; i++ {
		g.Compute(50)
		if g.IsGameOver() {
			t.Fatalf("IsGameOver() = true after %d steps", i+1)
		}
	}
}

func TestObjectsStayInArena(t *testing.T) {
	cfg := config.Default().Test
	g := New(cfg, 77)

	for i := 0; i < 2000; i++ {
		g.Compute(16)
		for _, obj := range g.GameObjects() {
			if !g.Bounds().Contains(obj.Coor()) {
				t.Fatalf("step %d: object at %v left %v", i, obj.Coor(), g.Bounds())
			}
		}
	}
}

func TestCircleMoves(t *testing.T) {
	g := New(config.Default().Test, 1)
	start := g.circle.Coor()

	g.circle.UpdateInput(core.InputState{Down: true})
	g.Compute(100)

	if got := g.circle.Coor(); got.Y <= start.Y || got.X != start.X {
		t.Errorf("Coor() = %v, expected to move down from %v", got, start)
	}
}
