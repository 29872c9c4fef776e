package components

import rl "github.com/gen2brain/raylib-go/raylib"

// HexColor converts 0xRRGGBB to an opaque raylib colour.
func HexColor(rgb uint32) rl.Color {
	return rl.NewColor(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb), 255)
}

// ColorFloat returns c as normalized RGBA scaled by intensity (alpha stays 1).
func ColorFloat(c rl.Color, intensity float32) []float32 {
	return []float32{
		float32(c.R) / 255.0 * intensity,
		float32(c.G) / 255.0 * intensity,
		float32(c.B) / 255.0 * intensity,
		1.0,
	}
}
