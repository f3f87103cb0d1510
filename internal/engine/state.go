package engine

// State is the session state.
type State int

const (
	StateRunning  State = iota // Minigames are computed every frame
	StatePaused                // Input still flows, nothing is computed
	StateGameOver              // Terminal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}
