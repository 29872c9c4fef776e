package world

import (
	"math"

	"quatview/internal/components"
	"quatview/internal/engine"
	"quatview/internal/orient"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FloorSize  = 10.0
	CubeSize   = 1.0
	CubeHeight = 1.5
	AxesLength = 1.25
	CameraFOV  = 50.0
)

var (
	BackgroundColor = components.HexColor(0xf0feff)
	FloorColor      = components.HexColor(0x7a5527)
	CubeColor       = components.HexColor(0x6242a6)
	SunPosition     = rl.Vector3{X: 5, Y: 25, Z: 15}
)

// World is the demo scene: a floor, a cube turned by the orientation
// controller, the sun, a hemisphere light and a fixed camera.
type World struct {
	Scene      *engine.Scene
	Renderer   *Renderer
	Controller *orient.Controller

	Cube   *engine.GameObject
	Axes   *engine.GameObject
	Floor  *engine.GameObject
	Camera *engine.GameObject
	Lights *engine.GameObject
}

func New(ctrl *orient.Controller, shadowMapResolution int32) *World {
	w := &World{
		Scene:      engine.NewScene("Main"),
		Renderer:   NewRenderer(shadowMapResolution),
		Controller: ctrl,
	}
	w.build()
	return w
}

// build creates the scene graph. It needs no GL context; GPU resources are
// created in Initialize.
func (w *World) build() {
	w.Lights = engine.NewGameObject("Lights")
	w.Lights.AddComponent(components.NewDirectionalLight(SunPosition))
	w.Lights.AddComponent(components.NewHemisphereLight(BackgroundColor, FloorColor, 0.75))
	w.Scene.AddGameObject(w.Lights)

	w.Floor = engine.NewGameObject("Floor")
	w.Floor.AddComponent(components.NewMeshRenderer(components.MeshPlane, FloorColor, rl.Vector3{X: FloorSize, Z: FloorSize}))
	w.Scene.AddGameObject(w.Floor)

	w.Cube = engine.NewGameObject("Cube")
	w.Cube.Transform.Position = rl.Vector3{Y: CubeHeight}
	w.Cube.AddComponent(components.NewMeshRenderer(components.MeshCube, CubeColor, rl.Vector3{X: CubeSize, Y: CubeSize, Z: CubeSize}))
	w.Cube.AddComponent(components.NewOrientationDriver(w.Controller))
	w.Scene.AddGameObject(w.Cube)

	w.Axes = engine.NewGameObject("Axes")
	w.Axes.AddComponent(components.NewAxesGizmo(AxesLength))
	w.Cube.AddChild(w.Axes)
	w.Scene.AddGameObject(w.Axes)

	w.Camera = engine.NewGameObject("Camera")
	w.Camera.Transform.Position = rl.Vector3{Y: 3, Z: 4}
	w.Camera.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, -math.Pi/8)
	w.Camera.AddComponent(components.NewCamera(CameraFOV))
	w.Scene.AddGameObject(w.Camera)
}

// Initialize loads GPU resources and starts all objects. The window must be
// open.
func (w *World) Initialize() {
	w.Renderer.Initialize(FloorSize + 4)
	w.Renderer.SetLights(w.Sun(), w.Hemisphere())

	for _, mr := range engine.ComponentsOf[*components.MeshRenderer](w.Scene.GameObjects) {
		mr.SetShader(w.Renderer.Shader)
	}
	w.Scene.Start()
}

func (w *World) Sun() *components.DirectionalLight {
	return engine.GetComponent[*components.DirectionalLight](w.Lights)
}

func (w *World) Hemisphere() *components.HemisphereLight {
	return engine.GetComponent[*components.HemisphereLight](w.Lights)
}

func (w *World) MainCamera() rl.Camera3D {
	cam := engine.GetComponent[*components.Camera](w.Camera)
	if cam == nil {
		return rl.Camera3D{}
	}
	return cam.GetRaylibCamera()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders the shadow pass and the lit pass. It must be called between
// BeginDrawing and EndDrawing, outside any 3D mode.
func (w *World) Draw() {
	w.Renderer.DrawShadowMap(w.Scene.GameObjects)

	camera := w.MainCamera()
	rl.ClearBackground(BackgroundColor)
	rl.BeginMode3D(camera)
	w.Renderer.DrawWithShadows(camera.Position, w.Scene.GameObjects)
	rl.EndMode3D()
}

func (w *World) Unload() {
	for _, u := range engine.ComponentsOf[engine.Unloader](w.Scene.GameObjects) {
		u.Unload()
	}
	w.Renderer.Unload()
}
