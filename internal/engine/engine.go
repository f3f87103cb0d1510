// Package engine runs a session: a paced loop that admits minigames over
// time, feeds them input, computes them and hands snapshots to a View until
// one of them reports game over.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mtsk/internal/config"
	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/registry"
)

// Options configures a new Engine.
type Options struct {
	Config config.EngineConfig
	Slots  []registry.Minigame // Admission order; slot 0 starts the session
	Input  *core.Input         // Defaults to a fresh Input
	View   View                // Defaults to a view that draws nothing
	Clock  Clock               // Defaults to SystemClock
	Logger *log.Logger         // Defaults to a discarding logger
}

// skipCounter is implemented by minigames that can abandon a spawn.
type skipCounter interface {
	Skipped() int
}

// Engine owns the active minigames and the session state machine.
type Engine struct {
	cfg    config.EngineConfig
	period time.Duration
	input  *core.Input
	view   View
	clock  Clock
	logger *log.Logger
	id     string

	mu       sync.Mutex
	state    State
	pending  []registry.Minigame
	active   []registry.Minigame
	snapshot Snapshot
	score    int64

	// Loop goroutine only
	started bool
	start   time.Time
	last    time.Time
	frame   uint64
	skipped map[int]int
	notes   []string // Instructions waiting for a running frame
}

// New creates an engine. No minigame is active until the first frame runs.
func New(opts Options) (*Engine, error) {
	if len(opts.Slots) == 0 {
		return nil, errors.New("engine: at least one minigame slot is required")
	}
	if opts.Config.FramePeriodMs <= 0 {
		return nil, errors.New("engine: frame period must be positive")
	}
	for i, m := range opts.Slots {
		if m == nil {
			return nil, fmt.Errorf("engine: nil minigame in slot %d", i)
		}
	}

	if opts.Input == nil {
		opts.Input = core.NewInput()
	}
	if opts.View == nil {
		opts.View = nopView{}
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	return &Engine{
		cfg:     opts.Config,
		period:  time.Duration(opts.Config.FramePeriodMs) * time.Millisecond,
		input:   opts.Input,
		view:    opts.View,
		clock:   opts.Clock,
		logger:  opts.Logger.With("session", id),
		id:      id,
		state:   StateRunning,
		pending: append([]registry.Minigame(nil), opts.Slots...),
		skipped: make(map[int]int),
	}, nil
}

// SessionID returns the unique id of this session.
func (e *Engine) SessionID() string {
	return e.id
}

// Input returns the input the engine polls every frame.
func (e *Engine) Input() *core.Input {
	return e.input
}

// Run drives the loop until a minigame reports game over or ctx is done.
// On game over the view receives the score and Run returns nil; on
// cancellation Run returns ctx.Err() without a game-over render.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info("session started", "slots", len(e.pending), "frame_period", e.period)

	for {
		if err := ctx.Err(); err != nil {
			e.logger.Info("session aborted", "elapsed_ms", e.elapsedMs())
			return err
		}

		frameStart := e.clock.Now()
		if e.Step(frameStart) {
			score := e.Score()
			e.logger.Info("game over", "score", score, "frames", e.frame)
			e.view.RenderGameOver(score)
			return nil
		}

		// Best effort pacing: no catch-up when the frame overran
		if spent := e.clock.Now().Sub(frameStart); spent < e.period {
			e.clock.Sleep(ctx, e.period-spent)
		}
	}
}

// Step runs one frame at time now and reports whether the session is over.
// The frame order is: elapsed time, admission, queued instructions, input,
// compute (unless paused), game-over check, render.
func (e *Engine) Step(now time.Time) bool {
	if e.State() == StateGameOver {
		return true
	}

	if !e.started {
		e.started = true
		e.start, e.last = now, now
	}
	elapsed := now.Sub(e.last).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	} else {
		e.last = now
	}
	session := e.last.Sub(e.start).Milliseconds()
	e.frame++

	e.admit(session)
	e.showNextNote()

	in := e.input.Poll()
	// Hits made while paused are dropped so they cannot land after resume
	if e.State() != StateRunning {
		in.Hit, in.HitHole = false, core.NoHole
	}
	active := e.Minigames()
	for _, m := range active {
		for _, obj := range m.GameObjects() {
			obj.UpdateInput(in)
		}
	}

	if e.State() == StateRunning {
		for i, m := range active {
			m.Compute(elapsed)
			e.logSkips(i, m)
		}
	}

	over := false
	for _, m := range active {
		if m.IsGameOver() {
			over = true
			e.logger.Debug("minigame lost", "minigame", m.ID())
			break
		}
	}

	snap := Snapshot{
		Frame:   e.frame,
		Elapsed: session,
		Input:   in,
		Panels:  make([]Panel, 0, len(active)),
	}
	for i, m := range active {
		snap.Panels = append(snap.Panels, newPanel(i, m))
	}

	e.mu.Lock()
	if over {
		e.state = StateGameOver
		e.score = session
	}
	snap.State = e.state
	e.snapshot = snap
	e.mu.Unlock()

	e.view.Render(snap.Clone())
	return over
}

// admit activates the next pending minigame once the session has lasted
// threshold × active minigames. The first slot is admitted immediately and
// at most one minigame joins per frame, paused or not.
func (e *Engine) admit(session int64) {
	e.mu.Lock()
	if len(e.pending) == 0 {
		e.mu.Unlock()
		return
	}
	n := len(e.active)
	if n > 0 && session <= e.cfg.AdmissionThresholdMs*int64(n) {
		e.mu.Unlock()
		return
	}
	m := e.pending[0]
	e.pending = e.pending[1:]
	e.active = append(e.active, m)
	e.mu.Unlock()

	e.logger.Info("minigame admitted", "minigame", m.ID(), "slot", n, "elapsed_ms", session)

	if !e.cfg.ShowInstructions {
		return
	}
	if in, ok := m.(registry.Instructor); ok {
		e.notes = append(e.notes, in.Instructions())
	}
}

// showNextNote pauses the session and shows the oldest queued instructions.
// Only one message is up at a time: the rest wait for a running frame.
func (e *Engine) showNextNote() {
	if len(e.notes) == 0 || e.State() != StateRunning {
		return
	}
	text := e.notes[0]
	e.notes = e.notes[1:]
	e.Pause()
	e.view.ShowMessage(text)
}

func (e *Engine) logSkips(i int, m registry.Minigame) {
	sc, ok := m.(skipCounter)
	if !ok {
		return
	}
	if n := sc.Skipped(); n != e.skipped[i] {
		e.skipped[i] = n
		e.logger.Debug("spawn skipped, no free spot", "minigame", m.ID(), "total_skipped", n)
	}
}

// Pause stops computing minigames. No-op unless running.
func (e *Engine) Pause() {
	e.setState(StateRunning, StatePaused)
}

// Resume continues a paused session. No-op unless paused.
func (e *Engine) Resume() {
	e.setState(StatePaused, StateRunning)
}

// TogglePause switches between running and paused.
func (e *Engine) TogglePause() {
	e.mu.Lock()
	switch e.state {
	case StateRunning:
		e.state = StatePaused
	case StatePaused:
		e.state = StateRunning
	default:
		e.mu.Unlock()
		return
	}
	s := e.state
	e.mu.Unlock()
	e.logger.Info("session state changed", "state", s)
}

func (e *Engine) setState(from, to State) {
	e.mu.Lock()
	if e.state != from {
		e.mu.Unlock()
		return
	}
	e.state = to
	e.mu.Unlock()
	e.logger.Info("session state changed", "state", to)
}

// State returns the current session state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Score returns the final score, or 0 while the session is still going.
func (e *Engine) Score() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// Snapshot returns a copy of the state after the latest frame.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot.Clone()
}

// Minigames returns the active minigames in admission order.
func (e *Engine) Minigames() []registry.Minigame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]registry.Minigame(nil), e.active...)
}

func (e *Engine) elapsedMs() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot.Elapsed
}
