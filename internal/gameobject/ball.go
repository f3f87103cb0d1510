package gameobject

import "github.com/vovakirdan/mtsk/internal/core"

// Ball drifts in a straight line and bounces off the arena walls.
type Ball struct {
	*Body
}

// NewBall creates a ball with the given velocity.
func NewBall(pos core.Point2D, vel core.Vector2D, radius float64) *Ball {
	return &Ball{
		Body: NewBody(KindBall, pos, vel, ShapeCircle, radius).WithColor(core.Green()),
	}
}

// UpdatePhysics integrates and reflects the velocity on wall contact.
func (b *Ball) UpdatePhysics(elapsed int64, arena Arena) {
	b.Body.UpdatePhysics(elapsed, arena)
	if arena == nil {
		return
	}

	area := arena.Bounds().Inset(b.Size())
	p, v := b.Coor(), b.Velocity()
	if area.Contains(p) {
		return
	}

	if (p.X < area.MinX && v.DX < 0) || (p.X > area.MaxX && v.DX > 0) {
		v.DX = -v.DX
	}
	if (p.Y < area.MinY && v.DY < 0) || (p.Y > area.MaxY && v.DY > 0) {
		v.DY = -v.DY
	}

	b.SetCoor(area.Clamp(p))
	b.SetVelocity(v)
}
