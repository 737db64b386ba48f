package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"glyph-animator/internal/animator"
	"glyph-animator/internal/config"
	"glyph-animator/internal/export"
	"glyph-animator/internal/glyph"
	"glyph-animator/internal/logging"
	"glyph-animator/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	glyphDir := flag.String("glyphs", "", "Directory with F/U/stripes image overrides")
	outputDir := flag.String("output", "", "Output directory (default: ./frames)")
	format := flag.String("format", "", "Output format: webp or png (default: webp)")
	width := flag.Int("width", 0, "Canvas width in pixels (default: 800)")
	height := flag.Int("height", 0, "Canvas height in pixels (default: 600)")
	interval := flag.Int("interval", 0, "Milliseconds between frames (default: 1100)")
	ticks := flag.Int("ticks", 0, "Ticks to render (default: 7, one full cycle; with -live, until interrupted unless set here or in config)")
	supersample := flag.Int("supersample", 0, "Render at N times the size and downsample (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	caption := flag.Bool("caption", false, "Draw frame number and elapsed time on each frame")
	live := flag.Bool("live", false, "Repaint a single output file on every timer tick")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	log := logging.New(os.Stderr, *verbose)
	logging.SetLogger(log)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		GlyphDir:    *glyphDir,
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		IntervalMS:  *interval,
		Ticks:       *ticks,
		Supersample: *supersample,
		Workers:     *workers,
	})
	if *caption {
		cfg.Caption = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Glyphs
	glyphIndex := glyph.BuildIndex(cfg.GlyphDir)
	glyphs := glyph.NewCache(glyphIndex)
	if err := glyphs.Preload(glyph.Names...); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading glyphs: %v\n", err)
		os.Exit(1)
	}
	log.Info("glyphs ready", "overrides", glyphIndex.Len())

	sc := scene.New(glyphs)
	sc.Window = *cfg.Window
	sc.PreserveAspect = *cfg.PreserveAspect
	sc.Background = cfg.BackgroundColor().Color()

	exportCfg := export.Config{
		Scene:       sc,
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Caption:     cfg.Caption,
	}

	if *live {
		os.Exit(runLive(exportCfg, cfg.Interval(), cfg.LiveTicks))
	}
	os.Exit(runBatch(exportCfg, cfg))
}

func runLive(exportCfg export.Config, interval time.Duration, maxTicks int) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path := filepath.Join(exportCfg.OutputDir, "current."+exportCfg.Format)
	fmt.Printf("Live output: %s (every %v, Ctrl-C to stop)\n", path, interval)

	err := animator.Run(ctx, interval, maxTicks, func(f animator.Frame) error {
		return export.WriteFrame(exportCfg, f, path)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runBatch(exportCfg export.Config, cfg config.Config) int {
	fmt.Printf("Glyph animator -> %s\n", cfg.Format)
	fmt.Printf("Ticks: %d, Canvas: %dx%d, Workers: %d\n", cfg.Ticks, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	frames := animator.Plan(cfg.Ticks, cfg.Interval())
	results := export.Run(exportCfg, frames)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	// Count results
	success, failed := 0, 0
	var errs []export.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errs = append(errs, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(frames))

	if len(errs) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errs))
		for _, e := range errs[:limit] {
			fmt.Printf("  tick %d (frame %d): %s\n", e.Tick, e.Number, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := export.WriteManifest(manifestPath, frames, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
