package components

import (
	"quatview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AxesGizmo draws the owner's local X (red), Y (green) and Z (blue) axes.
type AxesGizmo struct {
	engine.BaseComponent
	Length float32
}

func NewAxesGizmo(length float32) *AxesGizmo {
	return &AxesGizmo{Length: length}
}

// Axes returns the world-space end points of the three axes, in X, Y, Z order.
func (a *AxesGizmo) Axes() (origin rl.Vector3, ends [3]rl.Vector3) {
	g := a.GetGameObject()
	if g == nil {
		return
	}
	origin = g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()
	units := [3]rl.Vector3{
		{X: a.Length * scale.X},
		{Y: a.Length * scale.Y},
		{Z: a.Length * scale.Z},
	}
	for i, u := range units {
		ends[i] = rl.Vector3Add(origin, rl.Vector3RotateByQuaternion(u, rot))
	}
	return
}

func (a *AxesGizmo) Draw() {
	g := a.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	origin, ends := a.Axes()
	colors := [3]rl.Color{rl.Red, rl.Green, rl.Blue}
	for i, end := range ends {
		rl.DrawLine3D(origin, end, colors[i])
	}
}
