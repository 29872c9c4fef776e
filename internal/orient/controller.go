package orient

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects how the target orientation is driven.
type Mode int

const (
	ModeManual Mode = iota
	ModePresetCycle
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModePresetCycle:
		return "presetCycle"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names produced by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return ModeManual, nil
	case "presetcycle", "preset-cycle", "preset":
		return ModePresetCycle, nil
	}
	return 0, fmt.Errorf("orient: unknown input mode %q", s)
}

// Presets is the fixed target sequence walked by AdvancePreset.
var Presets = [4]mgl64.Quat{
	New(0, 1, 0, 0),
	New(0, 0, 1, 0),
	New(0, 0, 0, 1),
	New(1, 0, 0, 0),
}

// Correction reports what SetTargetFromComponents did to its input so the
// caller can update its input fields.
type Correction struct {
	// Reset marks x, y, z, w components that were not numbers and were
	// replaced with 0. The matching fields should display 0.
	Reset [4]bool

	// Degenerate is set when every component was 0. The target becomes the
	// identity in that case.
	Degenerate bool

	// Values is the target after the call, as [x, y, z, w].
	Values [4]float64
}

// Controller owns the current orientation of the displayed object, the
// orientation it is turning toward and the preset cycle position.
// It is not safe for concurrent use; the host calls it from its frame loop.
type Controller struct {
	mode       Mode
	current    mgl64.Quat
	target     mgl64.Quat
	cycleIndex int
}

// NewController returns a controller at rest on the identity orientation.
func NewController(mode Mode) *Controller {
	return &Controller{
		mode:    mode,
		current: Identity(),
		target:  Identity(),
	}
}

func (c *Controller) Mode() Mode { return c.mode }

// Current is the orientation the object is displayed at.
func (c *Controller) Current() mgl64.Quat { return c.current }

// Target is the unit quaternion the object is turning toward.
func (c *Controller) Target() mgl64.Quat { return c.target }

// CycleIndex is the position of the next preset AdvancePreset will select.
func (c *Controller) CycleIndex() int { return c.cycleIndex }

// Step turns current toward target by the fraction deltaSeconds of the
// remaining arc. A delta of one second or more lands exactly on target.
func (c *Controller) Step(deltaSeconds float64) {
	if !(deltaSeconds > 0) {
		return
	}
	if deltaSeconds >= 1 {
		c.current = c.target
		return
	}
	c.current = unitOr(Slerp(c.current, c.target, deltaSeconds), c.current)
}

// SetTargetFromComponents replaces the target with the normalized (x, y, z, w).
// Components that are NaN or infinite count as 0. An all-zero vector has no
// direction and resets the target to the identity.
func (c *Controller) SetTargetFromComponents(x, y, z, w float64) Correction {
	var corr Correction
	in := [4]float64{x, y, z, w}
	for i, v := range in {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			in[i] = 0
			corr.Reset[i] = true
		}
	}

	q, ok := Normalize(New(in[0], in[1], in[2], in[3]))
	if !ok {
		q = Identity()
		corr.Degenerate = true
	}
	c.target = q
	corr.Values = Components(c.target)
	return corr
}

// AdvancePreset moves the target to the next preset and steps once with the
// current frame delta so turning starts on this frame. Key repeat filtering
// is the caller's job.
func (c *Controller) AdvancePreset(deltaSeconds float64) {
	c.target = Presets[c.cycleIndex]
	c.cycleIndex = (c.cycleIndex + 1) % len(Presets)
	c.Step(deltaSeconds)
}

func unitOr(q, fallback mgl64.Quat) mgl64.Quat {
	if n, ok := Normalize(q); ok {
		return n
	}
	return fallback
}
