package input

import (
	"unicode/utf8"

	"quatview/internal/engine"
	"quatview/internal/orient"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyEvent is a key-down, either the initial press or an auto-repeat.
type KeyEvent struct {
	Key    int32
	Text   string
	Repeat bool
	// FrameDelta is the delta of the frame the event was polled in.
	FrameDelta float32
}

var keypadText = map[int32]string{
	rl.KeyKpDecimal:  ".",
	rl.KeyKpDivide:   "/",
	rl.KeyKpMultiply: "*",
	rl.KeyKpSubtract: "-",
	rl.KeyKpAdd:      "+",
	rl.KeyKpEnter:    "Enter",
	rl.KeyKpEqual:    "=",
}

var namedKeys = map[int32]string{
	rl.KeyEscape:       "Escape",
	rl.KeyEnter:        "Enter",
	rl.KeyTab:          "Tab",
	rl.KeyBackspace:    "Backspace",
	rl.KeyInsert:       "Insert",
	rl.KeyDelete:       "Delete",
	rl.KeyRight:        "ArrowRight",
	rl.KeyLeft:         "ArrowLeft",
	rl.KeyDown:         "ArrowDown",
	rl.KeyUp:           "ArrowUp",
	rl.KeyPageUp:       "PageUp",
	rl.KeyPageDown:     "PageDown",
	rl.KeyHome:         "Home",
	rl.KeyEnd:          "End",
	rl.KeyCapsLock:     "CapsLock",
	rl.KeyScrollLock:   "ScrollLock",
	rl.KeyNumLock:      "NumLock",
	rl.KeyPrintScreen:  "PrintScreen",
	rl.KeyPause:        "Pause",
	rl.KeyLeftShift:    "Shift",
	rl.KeyRightShift:   "Shift",
	rl.KeyLeftControl:  "Control",
	rl.KeyRightControl: "Control",
	rl.KeyLeftAlt:      "Alt",
	rl.KeyRightAlt:     "Alt",
	rl.KeyLeftSuper:    "Meta",
	rl.KeyRightSuper:   "Meta",
	rl.KeyKbMenu:       "ContextMenu",
}

// KeyText returns the textual name of a raylib key code. Printable keys give
// their single character (letters in lower case), everything else a
// descriptive name.
func KeyText(key int32) string {
	switch {
	case key >= rl.KeyA && key <= rl.KeyZ:
		return string(rune('a' + key - rl.KeyA))
	case key >= rl.KeySpace && key <= rl.KeyGrave:
		return string(rune(key))
	case key >= rl.KeyKp0 && key <= rl.KeyKp9:
		return string(rune('0' + key - rl.KeyKp0))
	case key >= rl.KeyF1 && key <= rl.KeyF12:
		return "F" + FormatNumber(float64(key-rl.KeyF1+1))
	}
	if s, ok := keypadText[key]; ok {
		return s
	}
	if s, ok := namedKeys[key]; ok {
		return s
	}
	return "Unidentified"
}

// PresetKeyHandler advances the preset cycle on every fresh press of a
// character key. Auto-repeat events are dropped so holding a key advances
// exactly once.
type PresetKeyHandler struct {
	Controller *orient.Controller
}

// Handle reports whether the event advanced the cycle.
func (h *PresetKeyHandler) Handle(ev KeyEvent) bool {
	if ev.Repeat || h.Controller == nil {
		return false
	}
	if utf8.RuneCountInString(ev.Text) != 1 {
		return false
	}
	h.Controller.AdvancePreset(float64(ev.FrameDelta))
	return true
}

// Subscribe wires h to a key event source.
func (h *PresetKeyHandler) Subscribe(ev *engine.EventWithArg[KeyEvent]) {
	ev.AddListener(func(e KeyEvent) { h.Handle(e) })
}
