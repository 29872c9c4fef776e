package components

import (
	"strings"

	"quatview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIText is a multi-line text region. When Source is set, Text is refreshed
// from it on every Update.
type UIText struct {
	engine.BaseComponent

	Text        string
	Source      func() string
	FontSize    int32
	LineSpacing int32
	Color       rl.Color
}

func NewUIText() *UIText {
	return &UIText{
		FontSize:    20,
		LineSpacing: 4,
		Color:       rl.DarkGray,
	}
}

func (t *UIText) Update(deltaTime float32) {
	if t.Source != nil {
		t.Text = t.Source()
	}
}

// Lines splits Text on newlines.
func (t *UIText) Lines() []string {
	if t.Text == "" {
		return nil
	}
	return strings.Split(t.Text, "\n")
}

// Draw renders the text within the given rect, one row per line.
func (t *UIText) Draw(rect rl.Rectangle) {
	for i, line := range t.Lines() {
		y := rect.Y + float32(int32(i)*(t.FontSize+t.LineSpacing))
		rl.DrawText(line, int32(rect.X), int32(y), t.FontSize, t.Color)
	}
}
