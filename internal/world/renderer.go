package world

import (
	"quatview/internal/components"
	"quatview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ShadowNear float32 = 1.0
	ShadowFar  float32 = 60.0
)

const (
	lightingVS = "assets/shaders/lighting.vs"
	lightingFS = "assets/shaders/lighting.fs"
)

// Renderer draws the scene in two passes: a depth-only pass from the sun
// into the shadow map, then the lit pass that samples it.
type Renderer struct {
	Shader      rl.Shader
	ShadowMap   rl.RenderTexture2D
	Light       *components.DirectionalLight
	Hemisphere  *components.HemisphereLight
	LightCamera rl.Camera3D
	MatLightVP  rl.Matrix
	resolution  int32
	sceneSize   float32
}

func NewRenderer(shadowMapResolution int32) *Renderer {
	return &Renderer{resolution: shadowMapResolution}
}

// Initialize loads GPU resources. sceneSize bounds the area the shadow camera
// has to cover.
func (r *Renderer) Initialize(sceneSize float32) {
	r.sceneSize = sceneSize
	r.Shader = rl.LoadShader(lightingVS, lightingFS)
	r.ShadowMap = loadShadowmapRenderTexture(r.resolution, r.resolution)

	resLoc := rl.GetShaderLocation(r.Shader, "shadowMapResolution")
	rl.SetShaderValue(r.Shader, resLoc, []float32{float32(r.resolution)}, rl.ShaderUniformFloat)
}

func (r *Renderer) SetLights(light *components.DirectionalLight, hemi *components.HemisphereLight) {
	r.Light = light
	r.Hemisphere = hemi
	r.updateLightCamera()
	r.updateShaderUniforms()
}

func (r *Renderer) updateLightCamera() {
	if r.Light == nil {
		return
	}
	r.LightCamera = r.Light.GetLightCamera(r.sceneSize)
}

func (r *Renderer) updateShaderUniforms() {
	if r.Light != nil {
		lightDirLoc := rl.GetShaderLocation(r.Shader, "lightDir")
		rl.SetShaderValue(r.Shader, lightDirLoc, []float32{r.Light.Direction.X, r.Light.Direction.Y, r.Light.Direction.Z}, rl.ShaderUniformVec3)

		lightColorLoc := rl.GetShaderLocation(r.Shader, "lightColor")
		rl.SetShaderValue(r.Shader, lightColorLoc, r.Light.GetColorFloat(), rl.ShaderUniformVec4)
	}
	if r.Hemisphere != nil {
		skyLoc := rl.GetShaderLocation(r.Shader, "skyColor")
		rl.SetShaderValue(r.Shader, skyLoc, r.Hemisphere.GetSkyFloat(), rl.ShaderUniformVec4)

		groundLoc := rl.GetShaderLocation(r.Shader, "groundColor")
		rl.SetShaderValue(r.Shader, groundLoc, r.Hemisphere.GetGroundFloat(), rl.ShaderUniformVec4)
	}
}

func (r *Renderer) DrawShadowMap(gameObjects []*engine.GameObject) {
	rl.BeginTextureMode(r.ShadowMap)
	rl.ClearBackground(rl.White)

	rl.BeginMode3D(r.LightCamera)

	halfSize := r.LightCamera.Fovy / 2.0
	shadowProj := rl.MatrixOrtho(
		-halfSize, halfSize,
		-halfSize, halfSize,
		ShadowNear, ShadowFar,
	)
	rl.SetMatrixProjection(shadowProj)

	lightView := rl.GetMatrixModelview()
	lightProj := rl.GetMatrixProjection()

	rl.SetCullFace(0)
	for _, mr := range shadowCasters(gameObjects) {
		mr.Draw()
	}
	rl.SetCullFace(1)

	rl.EndMode3D()
	rl.EndTextureMode()

	rl.Viewport(0, 0, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))

	r.MatLightVP = rl.MatrixMultiply(lightView, lightProj)
}

// DrawWithShadows must be called inside BeginMode3D with the view camera.
func (r *Renderer) DrawWithShadows(cameraPos rl.Vector3, gameObjects []*engine.GameObject) {
	viewPosLoc := rl.GetShaderLocation(r.Shader, "viewPos")
	rl.SetShaderValue(r.Shader, viewPosLoc, []float32{cameraPos.X, cameraPos.Y, cameraPos.Z}, rl.ShaderUniformVec3)

	lightVPLoc := rl.GetShaderLocation(r.Shader, "matLightVP")
	rl.SetShaderValueMatrix(r.Shader, lightVPLoc, r.MatLightVP)

	shadowMapLoc := rl.GetShaderLocation(r.Shader, "shadowMap")
	rl.EnableShader(r.Shader.ID)

	textureSlot := int32(10)
	rl.ActiveTextureSlot(textureSlot)
	rl.EnableTexture(r.ShadowMap.Depth.ID)
	rl.SetUniform(shadowMapLoc, []int32{textureSlot}, int32(rl.ShaderUniformInt), 1)

	for _, d := range engine.ComponentsOf[engine.Drawable](gameObjects) {
		d.Draw()
	}
}

func (r *Renderer) Unload() {
	rl.UnloadShader(r.Shader)
	rl.UnloadRenderTexture(r.ShadowMap)
}

func shadowCasters(gameObjects []*engine.GameObject) []*components.MeshRenderer {
	var result []*components.MeshRenderer
	for _, mr := range engine.ComponentsOf[*components.MeshRenderer](gameObjects) {
		if mr.CastShadows {
			result = append(result, mr)
		}
	}
	return result
}

func loadShadowmapRenderTexture(width, height int32) rl.RenderTexture2D {
	target := rl.RenderTexture2D{}

	target.ID = rl.LoadFramebuffer()
	target.Texture.Width = width
	target.Texture.Height = height

	if target.ID > 0 {
		rl.EnableFramebuffer(target.ID)

		target.Depth.ID = rl.LoadTextureDepth(width, height, false)
		target.Depth.Width = width
		target.Depth.Height = height
		target.Depth.Format = 19
		target.Depth.Mipmaps = 1

		rl.FramebufferAttach(target.ID, target.Depth.ID, rl.AttachmentDepth, rl.AttachmentTexture2d, 0)

		rl.DisableFramebuffer()
	}

	return target
}
