package game

import (
	"fmt"

	"quatview/internal/input"
	"quatview/internal/orient"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelX       = 10
	panelY       = 10
	fieldWidth   = 140
	fieldHeight  = 28
	fieldSpacing = 6
	labelWidth   = 20
	statusTTL    = 3.0
)

var (
	colorPanelBg   = rl.NewColor(255, 255, 255, 200)
	colorPanelLine = rl.NewColor(98, 66, 166, 255)
	colorText      = rl.NewColor(40, 40, 50, 255)
)

func initPanelStyle() {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorPanelLine))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
}

func (g *Game) DrawUI() {
	y := float32(panelY)
	if g.Panel != nil {
		y = g.drawManualPanel(y)
	} else {
		rl.DrawText("Press any character key to cycle presets", panelX, int32(y), 18, colorText)
		y += 26
		rl.DrawText(fmt.Sprintf("Preset %d of %d", g.Controller.CycleIndex()+1, len(orient.Presets)), panelX, int32(y), 18, colorText)
		y += 30
	}

	g.Info.Draw(rl.Rectangle{X: panelX, Y: y + 8, Width: 400, Height: 120})

	rl.DrawText("F12 capture, F1 debug view", panelX, int32(rl.GetScreenHeight())-28, 16, colorText)
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)

	if g.statusMsg != "" && rl.GetTime()-g.statusMsgTime < statusTTL {
		rl.DrawText(g.statusMsg, panelX, int32(rl.GetScreenHeight())-52, 16, colorPanelLine)
	}

	if g.DebugMode {
		g.drawDebug()
	}
}

// drawManualPanel draws the four fields and the Apply button and returns the
// y coordinate below them.
func (g *Game) drawManualPanel(y float32) float32 {
	height := float32(len(g.Panel.Fields)+1)*(fieldHeight+fieldSpacing) + fieldSpacing
	rl.DrawRectangleRec(rl.Rectangle{X: panelX - 4, Y: y - 4, Width: labelWidth + fieldWidth + 16, Height: height}, colorPanelBg)

	for _, f := range g.Panel.Fields {
		rl.DrawText(f.Tag, panelX, int32(y)+6, 18, colorText)
		bounds := rl.Rectangle{X: panelX + labelWidth, Y: y, Width: fieldWidth, Height: fieldHeight}
		if gui.TextBox(bounds, &f.Text, 32, f.Editing) {
			toggleField(f)
		}
		y += fieldHeight + fieldSpacing
	}

	if gui.Button(rl.Rectangle{X: panelX + labelWidth, Y: y, Width: fieldWidth, Height: fieldHeight}, "Apply") {
		g.Panel.Apply(g.Controller)
	}
	return y + fieldHeight + fieldSpacing
}

// toggleField flips edit mode; leaving edit mode is the field's change event.
func toggleField(f *input.Field) {
	if f.Editing {
		f.Commit()
	}
	f.Editing = !f.Editing
}

func (g *Game) drawDebug() {
	r := g.World.Renderer
	previewSize := int32(256)
	screenW := int32(rl.GetScreenWidth())
	rl.DrawTexturePro(
		r.ShadowMap.Depth,
		rl.Rectangle{X: 0, Y: 0, Width: float32(r.ShadowMap.Depth.Width), Height: float32(-r.ShadowMap.Depth.Height)},
		rl.Rectangle{X: float32(screenW - previewSize - 10), Y: 40, Width: float32(previewSize), Height: float32(previewSize)},
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)
	rl.DrawRectangleLines(screenW-previewSize-10, 40, previewSize, previewSize, rl.DarkGreen)
	rl.DrawText("Shadow Map", screenW-previewSize-10, previewSize+45, 16, rl.DarkGreen)

	target := g.Controller.Target()
	rl.DrawText(fmt.Sprintf("Target: %s", orient.Format(target, 4)), screenW-previewSize-10, previewSize+70, 14, colorText)
	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), screenW-previewSize-10, previewSize+140, 16, rl.DarkGreen)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), screenW-previewSize-10, previewSize+160, 16, rl.DarkGreen)
}
