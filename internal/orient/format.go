package orient

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// FullPrecision makes FormatComponent print the shortest text that parses
// back to the same float64.
const FullPrecision = -1

// FormatComponent renders v with a fixed number of decimals, or at full
// precision when decimals is FullPrecision.
func FormatComponent(v float64, decimals int) string {
	if decimals < 0 {
		decimals = FullPrecision
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Format renders q as the four labelled lines shown in the info overlay.
func Format(q mgl64.Quat, decimals int) string {
	labels := [4]string{"X", "Y", "Z", "W"}
	var b strings.Builder
	for i, v := range Components(q) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(labels[i])
		b.WriteString(": ")
		b.WriteString(FormatComponent(v, decimals))
	}
	return b.String()
}
