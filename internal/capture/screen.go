package capture

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GrabScreen copies the current framebuffer into a Go image. Call it after
// the frame has been drawn and before EndDrawing swaps buffers.
func GrabScreen() image.Image {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	return img.ToImage()
}
