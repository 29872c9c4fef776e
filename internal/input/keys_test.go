package input

import (
	"testing"

	"quatview/internal/engine"
	"quatview/internal/orient"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestKeyText(t *testing.T) {
	tests := []struct {
		key  int32
		want string
	}{
		{rl.KeyA, "a"},
		{rl.KeyZ, "z"},
		{rl.KeyOne, "1"},
		{rl.KeySpace, " "},
		{rl.KeyComma, ","},
		{rl.KeyKp7, "7"},
		{rl.KeyKpAdd, "+"},
		{rl.KeyEnter, "Enter"},
		{rl.KeyLeftShift, "Shift"},
		{rl.KeyF12, "F12"},
		{rl.KeyUp, "ArrowUp"},
		{9999, "Unidentified"},
	}

	for _, tt := range tests {
		if got := KeyText(tt.key); got != tt.want {
			t.Errorf("KeyText(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestPresetKeyHandlerAdvancesOnCharacterKey(t *testing.T) {
	c := orient.NewController(orient.ModePresetCycle)
	h := &PresetKeyHandler{Controller: c}

	if !h.Handle(KeyEvent{Key: rl.KeyA, Text: "a"}) {
		t.Fatal("Character key should advance the cycle")
	}
	if c.CycleIndex() != 1 || c.Target() != orient.Presets[0] {
		t.Errorf("Unexpected state after one press: index %d, target %v", c.CycleIndex(), c.Target())
	}
}

func TestPresetKeyHandlerIgnoresRepeat(t *testing.T) {
	c := orient.NewController(orient.ModePresetCycle)
	h := &PresetKeyHandler{Controller: c}
	h.Handle(KeyEvent{Key: rl.KeyA, Text: "a"})
	target := c.Target()

	for i := 0; i < 10; i++ {
		if h.Handle(KeyEvent{Key: rl.KeyA, Text: "a", Repeat: true}) {
			t.Fatal("Repeat event should not advance the cycle")
		}
	}

	if c.CycleIndex() != 1 {
		t.Errorf("Expected cycle index 1, got %d", c.CycleIndex())
	}
	if c.Target() != target {
		t.Errorf("Target changed on repeat: %v -> %v", target, c.Target())
	}
}

func TestPresetKeyHandlerIgnoresNamedKeys(t *testing.T) {
	c := orient.NewController(orient.ModePresetCycle)
	h := &PresetKeyHandler{Controller: c}

	for _, key := range []int32{rl.KeyEnter, rl.KeyLeftShift, rl.KeyF1, rl.KeyUp} {
		if h.Handle(KeyEvent{Key: key, Text: KeyText(key)}) {
			t.Errorf("Key %q should not advance the cycle", KeyText(key))
		}
	}
	if c.CycleIndex() != 0 {
		t.Errorf("Expected cycle index 0, got %d", c.CycleIndex())
	}
}

func TestPresetKeyHandlerSubscribe(t *testing.T) {
	c := orient.NewController(orient.ModePresetCycle)
	h := &PresetKeyHandler{Controller: c}
	var keys engine.EventWithArg[KeyEvent]
	h.Subscribe(&keys)

	keys.Invoke(KeyEvent{Key: rl.KeyQ, Text: "q", FrameDelta: 1})

	if c.Current() != orient.Presets[0] {
		t.Errorf("Expected the frame delta to carry the step to the preset, got %v", c.Current())
	}
}
