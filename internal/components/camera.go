package components

import (
	"quatview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a perspective camera that looks down the owner's local -Z axis.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera(fov float32) *Camera {
	return &Camera{
		FOV:        fov,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	rot := g.WorldRotation()
	forward := rl.Vector3RotateByQuaternion(rl.Vector3{X: 0, Y: 0, Z: -1}, rot)
	up := rl.Vector3RotateByQuaternion(rl.Vector3{X: 0, Y: 1, Z: 0}, rot)

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         up,
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
