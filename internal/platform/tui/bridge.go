package tui

import (
	"sync/atomic"

	"github.com/vovakirdan/mtsk/internal/engine"
)

// Bridge is the engine.View handed to the engine. It only stores what it
// receives, so the engine never waits on the terminal; the Bubble Tea
// program picks the values up on its next tick.
type Bridge struct {
	snap    atomic.Pointer[engine.Snapshot]
	message atomic.Pointer[string]
	over    atomic.Bool
	score   atomic.Int64
}

// NewBridge creates an empty bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Render stores the latest snapshot.
func (b *Bridge) Render(s engine.Snapshot) {
	b.snap.Store(&s)
}

// RenderGameOver records the final score.
func (b *Bridge) RenderGameOver(score int64) {
	b.score.Store(score)
	b.over.Store(true)
}

// ShowMessage queues a message for the model to display.
func (b *Bridge) ShowMessage(text string) {
	b.message.Store(&text)
}

// Latest returns the most recent snapshot, if any.
func (b *Bridge) Latest() (engine.Snapshot, bool) {
	s := b.snap.Load()
	if s == nil {
		return engine.Snapshot{}, false
	}
	return *s, true
}

// TakeMessage returns and clears the pending message.
func (b *Bridge) TakeMessage() (string, bool) {
	m := b.message.Swap(nil)
	if m == nil {
		return "", false
	}
	return *m, true
}

// GameOver returns the final score once the session has ended.
func (b *Bridge) GameOver() (int64, bool) {
	if !b.over.Load() {
		return 0, false
	}
	return b.score.Load(), true
}
