package components

import (
	"quatview/internal/engine"
	"quatview/internal/orient"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrientationDriver ticks an orient.Controller once per frame and copies its
// current orientation onto the owning object's rotation.
type OrientationDriver struct {
	engine.BaseComponent
	Controller *orient.Controller
}

func NewOrientationDriver(c *orient.Controller) *OrientationDriver {
	return &OrientationDriver{Controller: c}
}

func (d *OrientationDriver) Start() {
	d.apply()
}

func (d *OrientationDriver) Update(deltaTime float32) {
	if d.Controller == nil {
		return
	}
	d.Controller.Step(float64(deltaTime))
	d.apply()
}

func (d *OrientationDriver) apply() {
	g := d.GetGameObject()
	if g == nil || d.Controller == nil {
		return
	}
	g.Transform.Rotation = ToRaylib(d.Controller.Current())
}
