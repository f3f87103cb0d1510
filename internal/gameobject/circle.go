package gameobject

import "github.com/vovakirdan/mtsk/internal/core"

// Circle is the player-controlled object. Its velocity is derived from the
// directional intents each frame and it never leaves the arena.
type Circle struct {
	*Body
	speed float64
}

// NewCircle creates a resting player circle.
// speed is in arena units per millisecond per active direction.
func NewCircle(pos core.Point2D, radius, speed float64) *Circle {
	return &Circle{
		Body:  NewBody(KindPlayer, pos, core.NullVector(), ShapeCircle, radius).WithColor(core.Yellow()),
		speed: speed,
	}
}

// Radius returns the circle radius.
func (c *Circle) Radius() float64 {
	return c.Size()
}

// UpdateInput sets the velocity from the direction flags.
func (c *Circle) UpdateInput(in core.InputState) {
	c.SetVelocity(in.Vector().Scale(c.speed))
}

// UpdatePhysics integrates and then keeps the circle inside the arena.
func (c *Circle) UpdatePhysics(elapsed int64, arena Arena) {
	c.Body.UpdatePhysics(elapsed, arena)
	if arena == nil {
		return
	}
	c.SetCoor(arena.Bounds().Inset(c.Radius()).Clamp(c.Coor()))
}
