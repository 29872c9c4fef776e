package components

import (
	"quatview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshPlane
)

// MeshRenderer owns a generated model and draws it with the object's world
// transform. The model is built in Start, so the GL context must exist.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType    MeshType
	Color       rl.Color
	Size        rl.Vector3
	CastShadows bool
	model       rl.Model
	loaded      bool
	shader      rl.Shader
	hasShader   bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType:    meshType,
		Color:       color,
		Size:        size,
		CastShadows: meshType != MeshPlane,
	}
}

func (m *MeshRenderer) Start() {
	if m.loaded {
		return
	}
	var mesh rl.Mesh
	switch m.MeshType {
	case MeshPlane:
		mesh = rl.GenMeshPlane(m.Size.X, m.Size.Z, 1, 1)
	default:
		mesh = rl.GenMeshCube(m.Size.X, m.Size.Y, m.Size.Z)
	}
	m.model = rl.LoadModelFromMesh(mesh)
	m.loaded = true
	m.applyMaterial()
}

// SetShader may be called before or after Start.
func (m *MeshRenderer) SetShader(shader rl.Shader) {
	m.shader = shader
	m.hasShader = true
	m.applyMaterial()
}

func (m *MeshRenderer) applyMaterial() {
	if !m.loaded {
		return
	}
	if m.hasShader {
		m.model.Materials.Shader = m.shader
	}
	m.model.Materials.Maps.Color = m.Color
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || !m.loaded {
		return
	}
	m.model.Transform = g.WorldMatrix()
	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, rl.White)
}

func (m *MeshRenderer) Unload() {
	if !m.loaded {
		return
	}
	rl.UnloadModel(m.model)
	m.loaded = false
}
