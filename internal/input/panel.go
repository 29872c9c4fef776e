package input

import (
	"quatview/internal/engine"
	"quatview/internal/orient"
)

// FieldTags are the manual panel fields in component order.
var FieldTags = [4]string{"x", "y", "z", "w"}

// ManualPanel is the numeric entry form: four fields and an Apply action.
type ManualPanel struct {
	Fields [4]*Field

	// OnApplied fires after every Apply with the controller's correction.
	OnApplied engine.EventWithArg[orient.Correction]
}

// NewManualPanel seeds the fields with the components of initial.
func NewManualPanel(initial [4]float64) *ManualPanel {
	p := &ManualPanel{}
	for i, tag := range FieldTags {
		p.Fields[i] = &Field{Tag: tag, Text: FormatNumber(initial[i])}
	}
	return p
}

// Field returns the field with the given tag, or nil.
func (p *ManualPanel) Field(tag string) *Field {
	for _, f := range p.Fields {
		if f.Tag == tag {
			return f
		}
	}
	return nil
}

// Apply hands the four field values to the controller and writes the
// normalized target back. Fields that were not numbers are read as 0, so the
// write-back also replaces their text.
func (p *ManualPanel) Apply(c *orient.Controller) orient.Correction {
	var v [4]float64
	for i, f := range p.Fields {
		v[i] = f.Value()
	}

	corr := c.SetTargetFromComponents(v[0], v[1], v[2], v[3])
	for i, f := range p.Fields {
		f.Text = FormatNumber(corr.Values[i])
	}

	p.OnApplied.Invoke(corr)
	return corr
}
