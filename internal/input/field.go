package input

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads the leading decimal number of s the way a browser number
// parser does: "0.5abc" is 0.5, "abc" and "" are NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	for end := len(s); end > 0; end-- {
		prefix := s[:end]
		if !isDecimalPrefix(prefix) {
			continue
		}
		v, err := strconv.ParseFloat(prefix, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			// Out of range exponents read as ±Inf.
			return v
		}
	}
	return math.NaN()
}

// isDecimalPrefix rejects forms strconv accepts but a number field does not
// (hex, "inf", "nan", underscores).
func isDecimalPrefix(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

// FormatNumber renders v the way it is written back into a field.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ClampField keeps a field's value inside [0, 1]. Text that does not start
// with a number is returned as is; Apply turns it into 0 later.
func ClampField(text string) string {
	v := ParseNumber(text)
	switch {
	case math.IsNaN(v):
		return text
	case v < 0:
		return "0"
	case v > 1:
		return "1"
	}
	return FormatNumber(v)
}

// Field is one numeric text box of the manual entry panel.
type Field struct {
	Tag     string
	Text    string
	Editing bool
}

// Value is the parsed field content, NaN when it is not a number.
func (f *Field) Value() float64 {
	return ParseNumber(f.Text)
}

// Commit runs the change handler: the value is clamped into [0, 1].
func (f *Field) Commit() {
	f.Text = ClampField(f.Text)
}
