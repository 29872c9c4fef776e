package components

import (
	"math"
	"quatview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DirectionalLight is the sun. It shines from Position toward the origin and
// is the only shadow caster light.
type DirectionalLight struct {
	engine.BaseComponent
	Position       rl.Vector3
	Direction      rl.Vector3
	Color          rl.Color
	Intensity      float32
	ShadowMapSize  int32
	ShadowDistance float32
}

func NewDirectionalLight(position rl.Vector3) *DirectionalLight {
	l := &DirectionalLight{
		Color:         HexColor(0xf0feff),
		Intensity:     1.0,
		ShadowMapSize: 2048,
	}
	l.SetPosition(position)
	return l
}

// SetPosition moves the light and re-aims it at the origin.
func (l *DirectionalLight) SetPosition(position rl.Vector3) {
	l.Position = position
	l.Direction = rl.Vector3Normalize(rl.Vector3Negate(position))
	l.ShadowDistance = rl.Vector3Length(position)
}

func (l *DirectionalLight) GetLightCamera(orthoSize float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3Scale(l.Direction, -l.ShadowDistance),
		Target:     rl.Vector3Zero(),
		Up:         l.lightCameraUp(),
		Fovy:       orthoSize,
		Projection: rl.CameraOrthographic,
	}
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return ColorFloat(l.Color, l.Intensity)
}

func (l *DirectionalLight) lightCameraUp() rl.Vector3 {
	if math.Abs(float64(l.Direction.Y)) > 0.9 {
		return rl.Vector3{X: 0, Y: 0, Z: 1}
	}
	return rl.Vector3{X: 0, Y: 1, Z: 0}
}
