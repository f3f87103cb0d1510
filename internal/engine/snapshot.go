package engine

import (
	"slices"

	"github.com/vovakirdan/mtsk/internal/core"
	"github.com/vovakirdan/mtsk/internal/gameobject"
	"github.com/vovakirdan/mtsk/internal/registry"
)

// Panel is the read-only state of one active minigame. Panels keep the
// admission order, so panel i always shows the same minigame.
type Panel struct {
	Index    int
	ID       string
	Title    string
	Bounds   core.Bounds
	Objects  []gameobject.Aspect // Insertion order
	Status   string
	GameOver bool
}

// Snapshot is a copy of the session state after one frame.
type Snapshot struct {
	Frame   uint64
	Elapsed int64 // Session wall-clock milliseconds
	State   State
	Input   core.InputState
	Panels  []Panel
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Panels = make([]Panel, len(s.Panels))
	for i, p := range s.Panels {
		p.Objects = slices.Clone(p.Objects)
		out.Panels[i] = p
	}
	return out
}

// Panel returns the panel for the minigame with the given ID.
func (s Snapshot) Panel(id string) (Panel, bool) {
	for _, p := range s.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

func newPanel(i int, m registry.Minigame) Panel {
	objs := m.GameObjects()
	p := Panel{
		Index:    i,
		ID:       m.ID(),
		Title:    m.Title(),
		Bounds:   m.Bounds(),
		Objects:  make([]gameobject.Aspect, 0, len(objs)),
		GameOver: m.IsGameOver(),
	}
	for _, obj := range objs {
		p.Objects = append(p.Objects, obj.Aspect())
	}
	if r, ok := m.(registry.Reporter); ok {
		p.Status = r.Status()
	}
	return p
}
