package gameobject

import "github.com/vovakirdan/mtsk/internal/core"

// Body is the physics model shared by every variant: a position moved by a
// velocity with linear, millisecond-scaled Euler integration.
type Body struct {
	kind     Kind
	pos      core.Point2D
	vel      core.Vector2D
	shape    Shape
	size     float64
	color    core.ColorRGB
	hasColor bool
}

// NewBody creates a body without a color.
func NewBody(kind Kind, pos core.Point2D, vel core.Vector2D, shape Shape, size float64) *Body {
	return &Body{
		kind:  kind,
		pos:   pos,
		vel:   vel,
		shape: shape,
		size:  size,
	}
}

// WithColor sets the body's color and returns it for chaining.
func (b *Body) WithColor(c core.ColorRGB) *Body {
	b.color = c
	b.hasColor = true
	return b
}

// UpdatePhysics moves the body by velocity × elapsed. Negative elapsed
// values are treated as zero.
func (b *Body) UpdatePhysics(elapsed int64, _ Arena) {
	if elapsed <= 0 {
		return
	}
	b.pos = b.pos.Add(b.vel, elapsed)
}

// UpdateInput ignores input; player-controlled variants override it.
func (b *Body) UpdateInput(core.InputState) {}

// Coor returns the body's position.
func (b *Body) Coor() core.Point2D {
	return b.pos
}

// SetCoor moves the body without integrating.
func (b *Body) SetCoor(p core.Point2D) {
	b.pos = p
}

// Velocity returns the body's velocity in units per millisecond.
func (b *Body) Velocity() core.Vector2D {
	return b.vel
}

// SetVelocity replaces the body's velocity.
func (b *Body) SetVelocity(v core.Vector2D) {
	b.vel = v
}

// Shape returns the body's shape.
func (b *Body) Shape() Shape {
	return b.shape
}

// Size returns the radius (circle) or side (square).
func (b *Body) Size() float64 {
	return b.size
}

// Color returns the body's color and whether one is set.
func (b *Body) Color() (core.ColorRGB, bool) {
	return b.color, b.hasColor
}

// Aspect returns the default drawing description.
func (b *Body) Aspect() Aspect {
	return Aspect{
		Kind:     b.kind,
		Shape:    b.shape,
		Center:   b.pos,
		Size:     b.size,
		Color:    b.color,
		HasColor: b.hasColor,
	}
}
