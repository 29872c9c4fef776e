package components

import (
	"quatview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HemisphereLight is an ambient term that fades from SkyColor on upward
// facing surfaces to GroundColor on downward facing ones.
type HemisphereLight struct {
	engine.BaseComponent
	SkyColor    rl.Color
	GroundColor rl.Color
	Intensity   float32
}

func NewHemisphereLight(sky, ground rl.Color, intensity float32) *HemisphereLight {
	return &HemisphereLight{
		SkyColor:    sky,
		GroundColor: ground,
		Intensity:   intensity,
	}
}

func (h *HemisphereLight) GetSkyFloat() []float32 {
	return ColorFloat(h.SkyColor, h.Intensity)
}

func (h *HemisphereLight) GetGroundFloat() []float32 {
	return ColorFloat(h.GroundColor, h.Intensity)
}
