package capture

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func testImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 0x6a, A: 255})
		}
	}
	return img
}

func TestDownscale(t *testing.T) {
	src := testImage(32, 16)

	got := Downscale(src, 0.5)
	if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 8 {
		t.Errorf("Expected 16x8, got %v", got.Bounds())
	}

	if Downscale(src, 1) != src {
		t.Error("Scale 1 should return the source image")
	}

	tiny := Downscale(src, 0.001)
	if tiny.Bounds().Dx() != 1 || tiny.Bounds().Dy() != 1 {
		t.Errorf("Expected at least 1x1, got %v", tiny.Bounds())
	}
}

func TestWriterSavesWebP(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	w, err := NewWriter(dir, 0.5, 1)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	w.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

	var mu sync.Mutex
	var saved []string
	w.OnSaved = func(path string, err error) {
		if err != nil {
			t.Errorf("save %s: %v", path, err)
		}
		mu.Lock()
		saved = append(saved, path)
		mu.Unlock()
	}

	path, err := w.Submit(testImage(32, 32))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	w.Close()

	if filepath.Base(path) != "capture-20261018-120000-001.webp" {
		t.Errorf("Unexpected file name %s", filepath.Base(path))
	}
	if len(saved) != 1 || saved[0] != path {
		t.Errorf("Expected OnSaved for %s, got %v", path, saved)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Capture file missing: %v", err)
	}
	if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
		t.Errorf("File does not look like WebP: % x", data[:min(len(data), 12)])
	}
}

func TestWriterSequenceNumbers(t *testing.T) {
	w, err := NewWriter(t.TempDir(), 1, 2)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	defer w.Close()

	a := w.nextPath()
	b := w.nextPath()
	if a == b {
		t.Errorf("Expected distinct paths, got %s twice", a)
	}
}
