package input

import (
	"quatview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard turns raylib's polled key state into KeyEvents. Call Poll once per
// frame; raylib refreshes its key queue in EndDrawing.
type Keyboard struct {
	OnKeyDown engine.EventWithArg[KeyEvent]
	held      map[int32]struct{}
}

func NewKeyboard() *Keyboard {
	return &Keyboard{held: make(map[int32]struct{})}
}

func (k *Keyboard) Poll(deltaTime float32) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		k.held[key] = struct{}{}
		k.OnKeyDown.Invoke(KeyEvent{Key: key, Text: KeyText(key), FrameDelta: deltaTime})
	}
	for key := range k.held {
		if !rl.IsKeyDown(key) {
			delete(k.held, key)
			continue
		}
		if rl.IsKeyPressedRepeat(key) {
			k.OnKeyDown.Invoke(KeyEvent{Key: key, Text: KeyText(key), Repeat: true, FrameDelta: deltaTime})
		}
	}
}
