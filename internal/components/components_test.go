package components

import (
	"math"
	"testing"

	"quatview/internal/engine"
	"quatview/internal/orient"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestHexColor(t *testing.T) {
	c := HexColor(0x6242a6)

	if c.R != 0x62 || c.G != 0x42 || c.B != 0xa6 || c.A != 255 {
		t.Errorf("Unexpected colour %v", c)
	}
}

func TestColorFloatScalesByIntensity(t *testing.T) {
	f := ColorFloat(rl.NewColor(255, 0, 51, 255), 0.5)

	if f[0] != 0.5 || f[1] != 0 || math.Abs(float64(f[2])-0.1) > 1e-6 || f[3] != 1 {
		t.Errorf("Unexpected float colour %v", f)
	}
}

func TestOrientationDriverCopiesCurrent(t *testing.T) {
	ctrl := orient.NewController(orient.ModePresetCycle)
	obj := engine.NewGameObject("Cube")
	driver := NewOrientationDriver(ctrl)
	obj.AddComponent(driver)
	obj.Start()

	ctrl.AdvancePreset(0)
	obj.Update(1)

	want := rl.Quaternion{X: 0, Y: 1, Z: 0, W: 0}
	if obj.Transform.Rotation != want {
		t.Errorf("Expected rotation %v, got %v", want, obj.Transform.Rotation)
	}
}

func TestOrientationDriverStepsByFrameDelta(t *testing.T) {
	ctrl := orient.NewController(orient.ModeManual)
	ctrl.SetTargetFromComponents(0, 1, 0, 1)
	obj := engine.NewGameObject("Cube")
	obj.AddComponent(NewOrientationDriver(ctrl))

	obj.Update(0.25)

	got := obj.Transform.Rotation
	if got.Y <= 0 || got.Y >= float32(math.Sqrt2/2) {
		t.Errorf("Expected a partial turn toward the target, got %v", got)
	}
	if ToRaylib(ctrl.Current()) != got {
		t.Errorf("Rotation %v does not match controller %v", got, ctrl.Current())
	}
}

func TestDirectionalLightAimsAtOrigin(t *testing.T) {
	l := NewDirectionalLight(rl.Vector3{X: 5, Y: 25, Z: 15})

	if math.Abs(float64(rl.Vector3Length(l.Direction))-1) > 1e-6 {
		t.Errorf("Direction should be unit length, got %v", l.Direction)
	}
	if l.Direction.Y >= 0 {
		t.Errorf("Sun above the floor should point down, got %v", l.Direction)
	}

	cam := l.GetLightCamera(30)
	if rl.Vector3Distance(cam.Position, l.Position) > 1e-4 {
		t.Errorf("Light camera should sit at the light position, got %v", cam.Position)
	}
	if cam.Projection != rl.CameraOrthographic {
		t.Error("Light camera should be orthographic")
	}
}

func TestAxesGizmoFollowsParentRotation(t *testing.T) {
	cube := engine.NewGameObject("Cube")
	cube.Transform.Position = rl.Vector3{Y: 1.5}
	cube.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, math.Pi/2)

	holder := engine.NewGameObject("Axes")
	gizmo := NewAxesGizmo(1.25)
	holder.AddComponent(gizmo)
	cube.AddChild(holder)

	origin, ends := gizmo.Axes()
	if rl.Vector3Distance(origin, cube.Transform.Position) > 1e-6 {
		t.Errorf("Expected origin at cube centre, got %v", origin)
	}
	// X axis turned 90 degrees about Z points along +Y.
	wantX := rl.Vector3{X: 0, Y: 2.75, Z: 0}
	if rl.Vector3Distance(ends[0], wantX) > 1e-5 {
		t.Errorf("Expected X axis end %v, got %v", wantX, ends[0])
	}
}

func TestCameraLooksDownLocalMinusZ(t *testing.T) {
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = rl.Vector3{Y: 3, Z: 4}
	obj.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, -math.Pi/8)
	cam := NewCamera(50)
	obj.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	dir := rl.Vector3Subtract(rc.Target, rc.Position)

	if dir.Z >= 0 || dir.Y >= 0 {
		t.Errorf("Expected camera to look forward and down, got direction %v", dir)
	}
	if rc.Fovy != 50 {
		t.Errorf("Expected fov 50, got %f", rc.Fovy)
	}
}

func TestUITextRefreshesFromSource(t *testing.T) {
	text := NewUIText()
	n := 0
	text.Source = func() string {
		n++
		return "X: 1\nY: 2"
	}

	text.Update(0.016)

	if n != 1 {
		t.Errorf("Expected source to be read once, got %d", n)
	}
	if lines := text.Lines(); len(lines) != 2 || lines[1] != "Y: 2" {
		t.Errorf("Unexpected lines %v", lines)
	}
}
