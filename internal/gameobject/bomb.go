package gameobject

import (
	"strconv"

	"github.com/vovakirdan/mtsk/internal/core"
)

// BombSquare is a static square carrying a countdown. The timer only moves
// inside the owning minigame's compute step.
type BombSquare struct {
	*Body
	timer int64 // Remaining milliseconds; negative means expired
}

// NewBombSquare creates a bomb with the given side and countdown.
func NewBombSquare(pos core.Point2D, side float64, color core.ColorRGB, timerMillis int64) *BombSquare {
	return &BombSquare{
		Body:  NewBody(KindBomb, pos, core.NullVector(), ShapeSquare, side).WithColor(color),
		timer: timerMillis,
	}
}

// Side returns the square side length.
func (b *BombSquare) Side() float64 {
	return b.Size()
}

// Timer returns the remaining milliseconds.
func (b *BombSquare) Timer() int64 {
	return b.timer
}

// Expired reports whether the countdown has gone negative.
func (b *BombSquare) Expired() bool {
	return b.timer < 0
}

// UpdatePhysics moves the bomb and counts its timer down.
func (b *BombSquare) UpdatePhysics(elapsed int64, arena Arena) {
	b.Body.UpdatePhysics(elapsed, arena)
	if elapsed > 0 {
		b.timer -= elapsed
	}
}

// Aspect labels the square with the whole seconds left.
func (b *BombSquare) Aspect() Aspect {
	a := b.Body.Aspect()
	secs := int64(0)
	if b.timer > 0 {
		secs = (b.timer + 999) / 1000
	}
	a.Label = strconv.FormatInt(secs, 10)
	if b.Expired() {
		a.Color = core.Red()
		a.HasColor = true
		a.Lost = true
	}
	return a
}
