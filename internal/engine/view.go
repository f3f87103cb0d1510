package engine

// View is the presentation side of a session. The engine calls it from the
// loop goroutine, so implementations must return quickly.
type View interface {
	// Render hands over the state of the frame that just ran.
	Render(snap Snapshot)

	// RenderGameOver reports the final score in milliseconds.
	RenderGameOver(score int64)

	// ShowMessage displays text while the session is paused. The view is
	// expected to resume the session once the message is dismissed.
	ShowMessage(text string)
}

// Resumer lets a view resume a paused session.
type Resumer interface {
	Resume()
}

// Controller is the set of session controls a view may use.
type Controller interface {
	Resumer
	Pause()
	TogglePause()
	State() State
}

type nopView struct{}

func (nopView) Render(Snapshot)      {}
func (nopView) RenderGameOver(int64) {}
func (nopView) ShowMessage(string)   {}
