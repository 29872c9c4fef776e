package game

import (
	"testing"

	"quatview/internal/config"
	"quatview/internal/input"
	"quatview/internal/orient"
)

func newTestGame(t *testing.T, mode orient.Mode) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Mode = mode.String()
	cfg.Capture.Dir = t.TempDir()

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(g.Capture.Close)
	return g
}

func TestNewManualModeWiresPanel(t *testing.T) {
	g := newTestGame(t, orient.ModeManual)

	if g.Panel == nil {
		t.Fatal("Manual mode should have an entry panel")
	}
	if g.Keyboard != nil || g.Presets != nil {
		t.Error("Manual mode should not listen for preset keys")
	}
	if g.Panel.Field("w").Text != "1" {
		t.Errorf("Panel should start at the identity target, got w=%q", g.Panel.Field("w").Text)
	}
}

func TestNewPresetModeWiresKeyboard(t *testing.T) {
	g := newTestGame(t, orient.ModePresetCycle)

	if g.Panel != nil {
		t.Error("Preset mode should not have an entry panel")
	}
	if g.Keyboard == nil || g.Keyboard.OnKeyDown.ListenerCount() != 1 {
		t.Fatal("Preset mode should subscribe the preset handler to the keyboard")
	}

	g.Keyboard.OnKeyDown.Invoke(input.KeyEvent{Text: "k"})
	g.Keyboard.OnKeyDown.Invoke(input.KeyEvent{Text: "k", Repeat: true})

	if g.Controller.CycleIndex() != 1 {
		t.Errorf("Expected one advance, got cycle index %d", g.Controller.CycleIndex())
	}
}

func TestInfoTextUsesModePrecision(t *testing.T) {
	g := newTestGame(t, orient.ModeManual)

	g.Info.Update(0)

	want := "X: 0.0000000\nY: 0.0000000\nZ: 0.0000000\nW: 1.0000000"
	if g.Info.Text != want {
		t.Errorf("Expected %q, got %q", want, g.Info.Text)
	}

	p := newTestGame(t, orient.ModePresetCycle)
	p.Info.Update(0)
	if p.Info.Text != "X: 0\nY: 0\nZ: 0\nW: 1" {
		t.Errorf("Unexpected preset readout %q", p.Info.Text)
	}
}

func TestToggleFieldClampsOnLeavingEdit(t *testing.T) {
	f := &input.Field{Tag: "x", Text: "-0.3"}

	toggleField(f)
	if !f.Editing || f.Text != "-0.3" {
		t.Errorf("Entering edit mode should not touch the text, got %+v", f)
	}

	toggleField(f)
	if f.Editing || f.Text != "0" {
		t.Errorf("Leaving edit mode should clamp, got %+v", f)
	}
}
