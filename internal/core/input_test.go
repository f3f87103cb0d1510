package core

import (
	"sync"
	"testing"
)

func TestInputStateVector(t *testing.T) {
	tests := []struct {
		name     string
		state    InputState
		expected Vector2D
	}{
		{"idle", InputState{}, Vector2D{0, 0}},
		{"up", InputState{Up: true}, Vector2D{0, -1}},
		{"down", InputState{Down: true}, Vector2D{0, 1}},
		{"left", InputState{Left: true}, Vector2D{-1, 0}},
		{"right", InputState{Right: true}, Vector2D{1, 0}},
		{"up and down cancel", InputState{Up: true, Down: true}, Vector2D{0, 0}},
		{"left and right cancel", InputState{Left: true, Right: true}, Vector2D{0, 0}},
		{"diagonal is not normalized", InputState{Up: true, Right: true}, Vector2D{1, -1}},
		{"all four cancel", InputState{Up: true, Down: true, Left: true, Right: true}, Vector2D{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Vector(); got != tc.expected {
				t.Errorf("Vector() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestInputSetMove(t *testing.T) {
	in := NewInput()

	in.SetMove(DirUp, true)
	in.SetMove(DirRight, true)
	s := in.State()
	if !s.Up || !s.Right || s.Down || s.Left {
		t.Errorf("State() = %+v, expected Up and Right", s)
	}

	in.SetMove(DirUp, false)
	if in.State().Up {
		t.Error("SetMove(DirUp, false) should clear Up")
	}

	in.Release()
	if in.State().Vector() != NullVector() {
		t.Error("Release should clear every direction")
	}
}

func TestInputPollConsumesHit(t *testing.T) {
	in := NewInput()
	if in.State().HitHole != NoHole {
		t.Errorf("New input HitHole = %d, expected NoHole", in.State().HitHole)
	}

	in.SetMove(DirLeft, true)
	in.Hit(4)

	first := in.Poll()
	if !first.Hit || first.HitHole != 4 {
		t.Errorf("Poll() = %+v, expected hit on hole 4", first)
	}
	if !first.Left {
		t.Error("Poll should carry directional state")
	}

	second := in.Poll()
	if second.Hit || second.HitHole != NoHole {
		t.Errorf("second Poll() = %+v, expected hit consumed", second)
	}
	if !second.Left {
		t.Error("Poll should not consume directional state")
	}
}

func TestInputConcurrentAccess(t *testing.T) {
	in := NewInput()
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			in.SetMove(Direction(i%4), i%2 == 0)
			in.Hit(i % 9)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s := in.Poll()
			if s.Hit && (s.HitHole < 0 || s.HitHole > 8) {
				t.Errorf("torn read: %+v", s)
				return
			}
		}
	}()
	wg.Wait()
}

func TestDirectionString(t *testing.T) {
	if DirLeft.String() != "Left" {
		t.Errorf("DirLeft.String() = %q, expected Left", DirLeft.String())
	}
	if Direction(42).String() != "Unknown" {
		t.Error("Unknown direction should stringify as Unknown")
	}
}
