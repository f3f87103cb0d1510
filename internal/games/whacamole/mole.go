package whacamole

import (
	"strconv"

	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/gameobject"
)

// Status is the lifecycle state of a mole.
type Status int

const (
	StatusWaiting Status = iota // Scheduled, not yet visible
	StatusUp                    // Visible and hittable
	StatusHit                   // Hit while up; terminal
	StatusMissed                // Window elapsed without a hit; terminal
)

// String returns the state name.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "WAITING"
	case StatusUp:
		return "UP"
	case StatusHit:
		return "HIT"
	case StatusMissed:
		return "MISSED"
	default:
		return "UNKNOWN"
	}
}

// Mole pops out of one hole at its appearance time and stays up for a
// window. Times are relative to the start of its Level.
type Mole struct {
	*gameobject.Body
	hole       int
	appearance int64
	window     int64
	clock      int64
	status     Status
	hitPending bool
}

// NewMole creates a waiting mole for the given hole.
func NewMole(hole int, pos core.Point2D, appearance, window int64, radius float64) *Mole {
	return &Mole{
		Body:       gameobject.NewBody(gameobject.KindMole, pos, core.NullVector(), gameobject.ShapeCircle, radius).WithColor(core.Brown()),
		hole:       hole,
		appearance: appearance,
		window:     window,
		status:     StatusWaiting,
	}
}

// Hole returns the hole index (0-based, row-major).
func (m *Mole) Hole() int {
	return m.hole
}

// AppearanceTime returns when the mole comes up, relative to its level.
func (m *Mole) AppearanceTime() int64 {
	return m.appearance
}

// Window returns how long the mole stays up.
func (m *Mole) Window() int64 {
	return m.window
}

// Status returns the current state.
func (m *Mole) Status() Status {
	return m.status
}

// UpdateInput records a hit on this mole's hole. Hits only count while the
// mole is up; the transition happens in the next physics step.
func (m *Mole) UpdateInput(in core.InputState) {
	if m.status == StatusUp && in.Hit && in.HitHole == m.hole {
		m.hitPending = true
	}
}

// UpdatePhysics advances the mole clock and its state machine.
func (m *Mole) UpdatePhysics(elapsed int64, _ gameobject.Arena) {
	if elapsed > 0 {
		m.clock += elapsed
	}

	switch m.status {
	case StatusWaiting:
		if m.clock < m.appearance {
			return
		}
		m.status = StatusUp
		fallthrough
	case StatusUp:
		if m.hitPending {
			m.status = StatusHit
		} else if m.clock >= m.appearance+m.window {
			m.status = StatusMissed
		}
		m.hitPending = false
	}
}

// IsGameOver reports whether the mole was missed.
func (m *Mole) IsGameOver() bool {
	return m.status == StatusMissed
}

// IsStillInUse reports whether the mole must stay in its level.
// Hit moles can be dropped; missed ones stay visible as the loss signal.
func (m *Mole) IsStillInUse() bool {
	return m.status != StatusHit
}

// Aspect hides waiting moles and paints missed ones red.
func (m *Mole) Aspect() gameobject.Aspect {
	a := m.Body.Aspect()
	a.Label = strconv.Itoa(m.hole + 1)
	switch m.status {
	case StatusWaiting, StatusHit:
		a.Hidden = true
	case StatusMissed:
		a.Color = core.Red()
		a.Lost = true
	}
	return a
}

// Hole is a static marker showing where moles can appear and which key hits it.
type Hole struct {
	*gameobject.Body
	index int
}

// NewHole creates a hole marker.
func NewHole(index int, pos core.Point2D, radius float64) *Hole {
	return &Hole{
		Body:  gameobject.NewBody(gameobject.KindHole, pos, core.NullVector(), gameobject.ShapeCircle, radius).WithColor(core.Gray()),
		index: index,
	}
}

// Index returns the hole index (0-based, row-major).
func (h *Hole) Index() int {
	return h.index
}

// Aspect labels the hole with its hit key.
func (h *Hole) Aspect() gameobject.Aspect {
	a := h.Body.Aspect()
	a.Label = strconv.Itoa(h.index + 1)
	return a
}
