package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mtsk/internal/config"
	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/engine"
)

// Model is the Bubble Tea model for a running session.
type Model struct {
	bridge  *Bridge
	ctrl    engine.Controller
	input   *core.Input
	cfg     config.TUIConfig
	keys    KeyMap
	help    help.Model
	now     func() time.Time
	cancel  context.CancelFunc
	held    map[core.Direction]time.Time // Direction -> release deadline
	summary table.Model

	snap     engine.Snapshot
	message  string
	over     bool
	score    int64
	width    int
	height   int
	quitting bool
}

// NewModel creates a model that reads frames from bridge, writes keys into
// input and pauses or resumes through ctrl. cancel stops the engine on quit.
func NewModel(bridge *Bridge, ctrl engine.Controller, input *core.Input, cfg config.TUIConfig, cancel context.CancelFunc) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		bridge: bridge,
		ctrl:   ctrl,
		input:  input,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		now:    time.Now,
		cancel: cancel,
		held:   make(map[core.Direction]time.Time),
		width:  80,
		height: 24,
	}
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.over {
		if key.Matches(msg, m.keys.Dismiss) {
			return m.quit()
		}
		return m, nil
	}

	// A message blocks the session until it is dismissed
	if m.message != "" {
		if key.Matches(msg, m.keys.Dismiss) {
			m.message = ""
			m.ctrl.Resume()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.ctrl.TogglePause()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.hold(dir)
	}
	if hole, ok := m.keys.HoleIndex(msg); ok {
		m.input.Hit(hole)
	}

	return m, nil
}

// hold activates a direction until the key-hold timeout passes without a
// repeat. Terminals report presses only, so releases are inferred.
func (m Model) hold(dir core.Direction) {
	opp := opposite(dir)
	m.input.SetMove(opp, false)
	delete(m.held, opp)

	m.input.SetMove(dir, true)
	m.held[dir] = m.now().Add(time.Duration(m.cfg.KeyHoldMs) * time.Millisecond)
}

// releaseExpired clears directions whose key has not repeated in time.
func (m Model) releaseExpired(now time.Time) {
	for dir, until := range m.held {
		if now.After(until) {
			m.input.SetMove(dir, false)
			delete(m.held, dir)
		}
	}
}

func opposite(d core.Direction) core.Direction {
	switch d {
	case core.DirUp:
		return core.DirDown
	case core.DirDown:
		return core.DirUp
	case core.DirLeft:
		return core.DirRight
	default:
		return core.DirLeft
	}
}

// handleTick pulls the latest state from the bridge.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.releaseExpired(t)

	if snap, ok := m.bridge.Latest(); ok {
		m.snap = snap
	}
	if text, ok := m.bridge.TakeMessage(); ok {
		m.message = text
	}
	if score, ok := m.bridge.GameOver(); ok && !m.over {
		m.over = true
		m.score = score
		m.message = ""
		m.summary = newSummaryTable(m.snap)
	}

	return m, tickCmd(m.cfg.FPS)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.over {
		return m.viewGameOver()
	}

	helpView := m.help.View(m.keys)
	bodyH := m.height - 1 - lipgloss.Height(helpView)

	var body string
	if m.message != "" {
		body = renderMessage(m.message, m.width, bodyH)
	} else {
		body = renderPanels(m.snap, m.width, bodyH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, statusLine(m.snap), helpView)
}

func (m Model) viewGameOver() string {
	var b strings.Builder
	b.WriteString(pausedStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("You lasted %s\n\n", formatMillis(m.score)))
	b.WriteString(m.summary.View())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("press enter or q to quit"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// newSummaryTable lists every minigame of the final frame.
func newSummaryTable(snap engine.Snapshot) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Minigame", Width: 18},
		{Title: "Status", Width: 22},
		{Title: "Result", Width: 8},
	}

	rows := make([]table.Row, 0, len(snap.Panels))
	for _, p := range snap.Panels {
		result := "ok"
		if p.GameOver {
			result = "lost"
		}
		rows = append(rows, table.Row{fmt.Sprint(p.Index + 1), p.Title, p.Status, result})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
	return t
}

// Play runs the Bubble Tea program for a session until the user quits.
// The engine must already use bridge as its view and is run here on its own
// goroutine; its error is returned once both sides have stopped.
func Play(ctx context.Context, eng *engine.Engine, bridge *Bridge, cfg config.TUIConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- eng.Run(ctx)
	}()

	model := NewModel(bridge, eng, eng.Input(), cfg, cancel)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, uiErr := p.Run()
	cancel()
	runErr := <-done

	if uiErr != nil {
		return fmt.Errorf("tui: %w", uiErr)
	}
	return runErr
}
