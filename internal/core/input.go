package core

import "sync"

// Direction is one of the four movement intents.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// NoHole marks an InputState without a pending hit.
const NoHole = -1

// InputState is an immutable view of the player's intents for one frame.
type InputState struct {
	Up, Down, Left, Right bool

	// Hit is a one-shot signal aimed at the hole HitHole (Whac-a-Mole).
	Hit     bool
	HitHole int
}

// Vector returns the sum of the unit vectors of every active direction.
// Opposite directions cancel; diagonals are not normalized.
func (s InputState) Vector() Vector2D {
	var v Vector2D
	if s.Up {
		v.DY--
	}
	if s.Down {
		v.DY++
	}
	if s.Left {
		v.DX--
	}
	if s.Right {
		v.DX++
	}
	return v
}

// Input is the shared structure written by the device-binding layer and
// read once per frame by the engine. A single mutex keeps reads coherent.
type Input struct {
	mu    sync.Mutex
	state InputState
}

// NewInput creates an Input with no active intents.
func NewInput() *Input {
	return &Input{state: InputState{HitHole: NoHole}}
}

// SetMove sets or clears a directional intent.
func (in *Input) SetMove(d Direction, active bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch d {
	case DirUp:
		in.state.Up = active
	case DirDown:
		in.state.Down = active
	case DirLeft:
		in.state.Left = active
	case DirRight:
		in.state.Right = active
	}
}

// Hit queues a hit on the given hole. The latest hit before a Poll wins.
func (in *Input) Hit(hole int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.state.Hit = true
	in.state.HitHole = hole
}

// Release clears every directional intent.
func (in *Input) Release() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.state.Up, in.state.Down, in.state.Left, in.state.Right = false, false, false, false
}

// State returns the current intents without consuming one-shot signals.
func (in *Input) State() InputState {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state
}

// Poll returns the current intents and consumes the pending hit.
// Called by the engine exactly once per frame.
func (in *Input) Poll() InputState {
	in.mu.Lock()
	defer in.mu.Unlock()
	s := in.state
	in.state.Hit = false
	in.state.HitHole = NoHole
	return s
}
