package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// ToRaylib narrows a float64 quaternion to raylib's float32 layout.
func ToRaylib(q mgl64.Quat) rl.Quaternion {
	return rl.Quaternion{
		X: float32(q.V[0]),
		Y: float32(q.V[1]),
		Z: float32(q.V[2]),
		W: float32(q.W),
	}
}
