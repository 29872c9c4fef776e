package game

import (
	"fmt"
	"log"
	"time"

	"quatview/internal/capture"
	"quatview/internal/components"
	"quatview/internal/config"
	"quatview/internal/input"
	"quatview/internal/orient"
	"quatview/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config     config.Config
	Controller *orient.Controller
	World      *world.World
	Panel      *input.ManualPanel
	Keyboard   *input.Keyboard
	Presets    *input.PresetKeyHandler
	Info       *components.UIText
	Capture    *capture.Writer
	DebugMode  bool

	captureRequested bool
	statusMsg        string
	statusMsgTime    float64

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) (*Game, error) {
	ctrl := orient.NewController(cfg.InputMode())

	writer, err := capture.NewWriter(cfg.Capture.Dir, cfg.Capture.Scale, cfg.Capture.Workers)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:     cfg,
		Controller: ctrl,
		World:      world.New(ctrl, cfg.ShadowMapResolution),
		Capture:    writer,
	}

	g.Info = components.NewUIText()
	g.Info.Source = func() string {
		return orient.Format(g.Controller.Current(), g.Config.Decimals())
	}

	switch ctrl.Mode() {
	case orient.ModeManual:
		g.Panel = input.NewManualPanel(orient.Components(ctrl.Target()))
		g.Panel.OnApplied.AddListener(g.onApplied)
	case orient.ModePresetCycle:
		g.Keyboard = input.NewKeyboard()
		g.Presets = &input.PresetKeyHandler{Controller: ctrl}
		g.Presets.Subscribe(&g.Keyboard.OnKeyDown)
	}
	return g, nil
}

func (g *Game) Run() {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if g.Config.Window.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)

	// Initialize world after OpenGL context is created
	g.World.Initialize()
	defer g.World.Unload()
	defer g.Capture.Close()

	initPanelStyle()
	log.Printf("Mode: %s", g.Controller.Mode())

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if g.Keyboard != nil {
		g.Keyboard.Poll(deltaTime)
	}

	g.World.Update(deltaTime)
	g.Info.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF12) {
		g.captureRequested = true
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	g.World.Draw()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()

	if g.captureRequested {
		g.captureRequested = false
		rl.DrawRenderBatchActive()
		g.saveCapture()
	}
	rl.EndDrawing()
}

func (g *Game) saveCapture() {
	path, err := g.Capture.Submit(capture.GrabScreen())
	if err != nil {
		log.Printf("Capture: %v", err)
		g.setStatus("Capture failed")
		return
	}
	g.setStatus(fmt.Sprintf("Saving %s", path))
}

func (g *Game) onApplied(corr orient.Correction) {
	if corr.Degenerate {
		g.setStatus("Zero quaternion, target reset to identity")
	}
}

func (g *Game) setStatus(msg string) {
	g.statusMsg = msg
	g.statusMsgTime = rl.GetTime()
}
