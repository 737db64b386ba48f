package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gogpu/gg"

	"glyph-animator/internal/animator"
	"glyph-animator/internal/canvas"
	"glyph-animator/internal/logging"
	"glyph-animator/internal/postprocess"
	"glyph-animator/internal/scene"
)

// Output formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
)

// Config holds all shared resources for an export run.
type Config struct {
	Scene       *scene.Scene
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Caption     bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Tick    int
	Number  int
	File    string
	Success bool
	Error   string
}

// FileName returns the output file name for a tick.
func FileName(tick int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", tick, format)
}

// Run renders frames with a worker pool. Presets are already resolved, so
// frames are independent and may finish in any order; results keep the
// order of frames.
func Run(cfg Config, frames []animator.Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logging.Logger().Info("progress", "done", p, "total", total, "frames_per_sec", rate)
				}
			}
		}
	}()

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, f animator.Frame) Result {
	name := FileName(f.Tick, cfg.Format)
	res := Result{Tick: f.Tick, Number: f.Number, File: name}

	if err := WriteFrame(cfg, f, filepath.Join(cfg.OutputDir, name)); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

// Render draws one frame at the configured size.
func Render(cfg Config, f animator.Frame) (*image.RGBA, error) {
	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := cfg.Width*ss, cfg.Height*ss

	r := canvas.NewRaster(w, h)
	if _, err := cfg.Scene.Render(r, w, h, f.Preset); err != nil {
		return nil, err
	}

	img := r.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	if cfg.Caption {
		text := fmt.Sprintf("Frame: %d  Time: %.1fs", f.Number, f.Elapsed.Seconds())
		postprocess.Caption(img, text, gg.Black.Color(), 6)
	}
	return img, nil
}

// WriteFrame renders f and writes it to path, replacing any previous file
// atomically.
func WriteFrame(cfg Config, f animator.Frame, path string) error {
	img, err := Render(cfg, f)
	if err != nil {
		return fmt.Errorf("export: render tick %d: %w", f.Tick, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".frame-*")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, img, cfg.Format); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Encode writes img as WebP (lossless) or PNG.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("export: WebP encode: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("export: PNG encode: %w", err)
		}
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
	return nil
}
