// Package headless provides a View that writes a session to a logger
// instead of a terminal. Messages are acknowledged immediately.
package headless

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mtsk/internal/engine"
)

// LogView logs frames, messages and the final score.
type LogView struct {
	logger *log.Logger
	every  uint64 // Log every Nth frame at debug level; 0 disables

	mu       sync.Mutex
	resumer  engine.Resumer
	limit    int64 // Session milliseconds after which stop is called; 0 disables
	stop     func()
	last     engine.Snapshot
	score    int64
	over     bool
	messages []string
}

// NewLogView creates a view logging every Nth frame.
func NewLogView(logger *log.Logger, every uint64) *LogView {
	return &LogView{logger: logger, every: every}
}

// SetResumer sets who resumes the session after a message.
func (v *LogView) SetResumer(r engine.Resumer) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resumer = r
}

// StopAfter calls stop once a frame reports at least ms of session time.
func (v *LogView) StopAfter(ms int64, stop func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.limit = ms
	v.stop = stop
}

// Render records the frame and logs it periodically.
func (v *LogView) Render(s engine.Snapshot) {
	v.mu.Lock()
	v.last = s
	stop := v.stop
	if v.limit <= 0 || s.Elapsed < v.limit {
		stop = nil
	}
	v.mu.Unlock()

	if v.every > 0 && s.Frame%v.every == 0 {
		kv := []any{"frame", s.Frame, "elapsed_ms", s.Elapsed, "state", s.State}
		for _, p := range s.Panels {
			kv = append(kv, p.ID, p.Status)
		}
		v.logger.Debug("frame", kv...)
	}

	if stop != nil {
		v.logger.Info("time limit reached", "elapsed_ms", s.Elapsed)
		stop()
	}
}

// RenderGameOver logs and records the final score.
func (v *LogView) RenderGameOver(score int64) {
	v.mu.Lock()
	v.score = score
	v.over = true
	v.mu.Unlock()

	v.logger.Info("game over", "score_ms", score)
}

// ShowMessage logs the first line of text and resumes the session.
func (v *LogView) ShowMessage(text string) {
	v.mu.Lock()
	v.messages = append(v.messages, text)
	r := v.resumer
	v.mu.Unlock()

	title, _, _ := strings.Cut(text, "\n")
	v.logger.Info("message", "title", title)
	if r != nil {
		r.Resume()
	}
}

// Result returns the final score and whether the session ended in game over.
func (v *LogView) Result() (int64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.score, v.over
}

// Last returns the latest rendered snapshot.
func (v *LogView) Last() engine.Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last
}

// Messages returns the messages shown so far.
func (v *LogView) Messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.messages...)
}
