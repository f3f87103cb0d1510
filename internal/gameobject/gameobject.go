// Package gameobject defines the movable entities owned by minigames and the
// shared physics model they build on. Variants are added by implementing
// GameObject, usually by embedding a *Body.
package gameobject

import "github.com/vovakirdan/mtsk/internal/core"

// Arena is the view of the owning minigame an object may consult during its
// physics step.
type Arena interface {
	Bounds() core.Bounds
}

// GameObject is the capability set every entity implements.
type GameObject interface {
	// UpdatePhysics advances the object by elapsed milliseconds.
	UpdatePhysics(elapsed int64, arena Arena)

	// UpdateInput lets player-controlled objects react to the frame's input.
	UpdateInput(in core.InputState)

	// Coor returns the current position.
	Coor() core.Point2D

	// Aspect describes how the object should be drawn.
	Aspect() Aspect
}

// Distance returns the Euclidean distance between two objects' positions.
func Distance(a, b GameObject) float64 {
	return a.Coor().Distance(b.Coor())
}

// Shape is the geometric primitive an object is drawn and collided as.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Kind identifies the role of an object for the View.
type Kind string

const (
	KindPlayer Kind = "player"
	KindBomb   Kind = "bomb"
	KindMole   Kind = "mole"
	KindBall   Kind = "ball"
	KindHole   Kind = "hole"
)

// Aspect is a read-only drawing description of one object.
type Aspect struct {
	Kind     Kind
	Shape    Shape
	Center   core.Point2D
	Size     float64 // Radius for circles, side for squares
	Color    core.ColorRGB
	HasColor bool
	Label    string // Short text drawn on the object (timer, hole key)
	Hidden   bool   // Object exists but should not be drawn this frame
	Lost     bool   // Object ended the minigame (expired bomb, missed mole)
}
