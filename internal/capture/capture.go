// Package capture saves frame grabs as WebP files without blocking the frame
// loop: encoding runs on a small worker pool.
package capture

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/panjf2000/ants/v2"
	"golang.org/x/image/draw"
)

// Writer encodes submitted images to <Dir>/capture-<timestamp>-<seq>.webp.
type Writer struct {
	dir   string
	scale float64
	pool  *ants.Pool
	wg    sync.WaitGroup
	seq   atomic.Uint64
	now   func() time.Time

	// OnSaved, if set, is called from a worker goroutine after each encode.
	OnSaved func(path string, err error)
}

// NewWriter starts a pool of workers. When all workers are busy further
// submissions are rejected rather than queued.
func NewWriter(dir string, scale float64, workers int) (*Writer, error) {
	pool, err := ants.NewPool(workers,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p any) {
			log.Printf("Capture: encoder panic: %v", p)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("capture: start pool: %w", err)
	}
	return &Writer{
		dir:   dir,
		scale: scale,
		pool:  pool,
		now:   time.Now,
	}, nil
}

// Submit queues img for encoding and returns the path it will be written to.
// img must not be modified afterwards.
func (w *Writer) Submit(img image.Image) (string, error) {
	path := w.nextPath()
	w.wg.Add(1)
	err := w.pool.Submit(func() {
		defer w.wg.Done()
		err := w.save(path, img)
		if err != nil {
			log.Printf("Capture: %v", err)
		} else {
			log.Printf("Capture: saved %s", path)
		}
		if w.OnSaved != nil {
			w.OnSaved(path, err)
		}
	})
	if err != nil {
		w.wg.Done()
		return "", fmt.Errorf("capture: submit %s: %w", path, err)
	}
	return path, nil
}

// Close waits for pending encodes and stops the workers.
func (w *Writer) Close() {
	w.wg.Wait()
	w.pool.Release()
}

func (w *Writer) nextPath() string {
	n := w.seq.Add(1)
	name := fmt.Sprintf("capture-%s-%03d.webp", w.now().Format("20060102-150405"), n)
	return filepath.Join(w.dir, name)
}

func (w *Writer) save(path string, img image.Image) error {
	img = Downscale(img, w.scale)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("capture: create dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture: create %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("capture: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("capture: close %s: %w", path, err)
	}
	return nil
}

// Downscale resizes img by scale with Catmull-Rom filtering. Scales of 1 or
// more return img untouched.
func Downscale(img image.Image, scale float64) image.Image {
	if scale >= 1 || scale <= 0 {
		return img
	}
	b := img.Bounds()
	width := max(1, int(float64(b.Dx())*scale))
	height := max(1, int(float64(b.Dy())*scale))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
