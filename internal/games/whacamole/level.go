package whacamole

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/mtsk/internal/core"
)

// Level owns the holes and the scheduled moles of one round.
type Level struct {
	number int
	holes  []core.Point2D
	moles  []*Mole
}

// NewLevel builds a level with count moles. Mole i (1-based) appears at
// i×interval on a randomly chosen hole that is free at that time; a hole is
// busy from its mole's appearance until the mole's window closes. When every
// hole is busy the appearance slides to the earliest release.
func NewLevel(number int, holes []core.Point2D, count int, interval, window int64, moleRadius float64, rng *rand.Rand) *Level {
	l := &Level{
		number: number,
		holes:  holes,
		moles:  make([]*Mole, 0, count),
	}

	busyUntil := make([]int64, len(holes))
	free := make([]int, 0, len(holes))
	at := int64(0)

	for i := 0; i < count; i++ {
		at += interval

		free = freeHoles(free[:0], busyUntil, at)
		if len(free) == 0 {
			at = slices.Min(busyUntil)
			free = freeHoles(free[:0], busyUntil, at)
		}

		h := free[rng.Intn(len(free))]
		busyUntil[h] = at + window
		l.moles = append(l.moles, NewMole(h, holes[h], at, window, moleRadius))
	}

	return l
}

func freeHoles(dst []int, busyUntil []int64, at int64) []int {
	for h, until := range busyUntil {
		if until <= at {
			dst = append(dst, h)
		}
	}
	return dst
}

// Number returns the 1-based level number.
func (l *Level) Number() int {
	return l.number
}

// Moles returns a copy of the remaining moles in schedule order.
func (l *Level) Moles() []*Mole {
	return slices.Clone(l.moles)
}

// Done reports whether every mole has been dealt with.
func (l *Level) Done() bool {
	return len(l.moles) == 0
}

// dropHit removes moles that are no longer in use and returns how many.
func (l *Level) dropHit() int {
	before := len(l.moles)
	l.moles = slices.DeleteFunc(l.moles, func(m *Mole) bool {
		return !m.IsStillInUse()
	})
	return before - len(l.moles)
}
