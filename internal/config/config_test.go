package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestParseOverlaysPartialFile(t *testing.T) {
	data := []byte(`
engine:
  slots: [catchsquare, test]
catchsquare:
  bomb_timer_ms: 20000
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := cfg.Engine.Slots; !reflect.DeepEqual(got, []string{"catchsquare", "test"}) {
		t.Errorf("Slots = %v, expected [catchsquare test]", got)
	}
	if cfg.CatchSquare.BombTimerMs != 20000 {
		t.Errorf("BombTimerMs = %d, expected 20000", cfg.CatchSquare.BombTimerMs)
	}
	// Untouched values keep their defaults
	if cfg.Engine.FramePeriodMs != 5 {
		t.Errorf("FramePeriodMs = %d, expected 5", cfg.Engine.FramePeriodMs)
	}
	if cfg.CatchSquare.BombSide != 150 {
		t.Errorf("BombSide = %g, expected 150", cfg.CatchSquare.BombSide)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero period", "engine:\n  frame_period_ms: 0\n", "frame_period_ms"},
		{"no slots", "engine:\n  slots: []\n", "engine.slots"},
		{"too many holes", "whacamole:\n  rows: 4\n  cols: 4\n", "holes"},
		{"bad progression", "catchsquare:\n  difficulty:\n    progression:\n      type: speed\n", "progression.type"},
		{"bomb too big", "catchsquare:\n  bomb_side: 5000\n", "bomb_side"},
		{"malformed", "engine: [\n", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Parse(%q) = nil error, expected failure", tt.yaml)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, expected it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Engine.FramePeriodMs = 0
	cfg.TUI.FPS = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}
	msg := err.Error()
	for _, want := range []string{"frame_period_ms", "tui.fps"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error %q missing %q", msg, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("tui:\n  fps: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TUI.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", cfg.TUI.FPS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err == nil {
		t.Fatal("Load(missing) = nil error, expected failure")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("Load(missing) should fall back to Default()")
	}
}

func writeUserConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".mtsk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	writeUserConfig(t, "tui:\n  fps: 45\n")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TUI.FPS != 45 {
		t.Errorf("FPS = %d, expected 45", cfg.TUI.FPS)
	}
}

func TestLoadInvalidUserConfigWarns(t *testing.T) {
	writeUserConfig(t, "engine:\n  frame_period_ms: -3\n")

	var buf bytes.Buffer
	cfg, err := Load("", log.New(&buf))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, expected the defaults", cfg)
	}
	if out := buf.String(); !strings.Contains(out, "invalid config") || !strings.Contains(out, ".mtsk") {
		t.Errorf("log output = %q, expected a warning naming the skipped file", out)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := Default()
	cfg.Engine.Slots = []string{"test"}

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "frame_period_ms: 5") {
		t.Errorf("Marshal() output missing frame_period_ms:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("Parse(Marshal()) = %+v, expected %+v", back, cfg)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in     string
		want   DifficultyPreset
		wantOK bool
	}{
		{"", "", true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.CatchSquare.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %g, expected 0.7", cfg.CatchSquare.Difficulty.InitialLevel)
	}
	if cfg.CatchSquare.BombTimerMs != 8000 {
		t.Errorf("BombTimerMs = %d, expected 8000", cfg.CatchSquare.BombTimerMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.WhacAMole.Difficulty.Enabled || cfg.CatchSquare.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = Default()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("empty preset should leave config unchanged")
	}
}
