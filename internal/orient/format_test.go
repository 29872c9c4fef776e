package orient

import "testing"

func TestFormatFixedDecimals(t *testing.T) {
	got := Format(New(0.5, 0, -0.25, 0.8291561975888499), 7)
	want := "X: 0.5000000\nY: 0.0000000\nZ: -0.2500000\nW: 0.8291562"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatFullPrecision(t *testing.T) {
	got := Format(New(0.7071067811865476, 0, 0, 0.7071067811865476), FullPrecision)
	want := "X: 0.7071067811865476\nY: 0\nZ: 0\nW: 0.7071067811865476"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatComponentNegativeDecimalsMeansFull(t *testing.T) {
	if got := FormatComponent(0.1, -5); got != "0.1" {
		t.Errorf("Expected 0.1, got %q", got)
	}
}
