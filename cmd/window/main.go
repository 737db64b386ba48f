package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"glyph-animator/internal/animator"
	"glyph-animator/internal/config"
	"glyph-animator/internal/glyph"
	"glyph-animator/internal/logging"
	"glyph-animator/internal/scene"
)

// game runs the slideshow inside ebiten's loop. Update and Draw are called
// from the same goroutine, so the animator needs no locking.
type game struct {
	scene    *scene.Scene
	anim     *animator.Animator
	interval time.Duration
	width    int
	height   int

	current  animator.Frame
	lastTick time.Time
	canvas   *screenCanvas
	err      error
}

func newGame(sc *scene.Scene, interval time.Duration, width, height int) *game {
	now := time.Now()
	a := animator.New(now)
	return &game{
		scene:    sc,
		anim:     a,
		interval: interval,
		width:    width,
		height:   height,
		current:  a.Current(now),
		lastTick: now,
		canvas:   newScreenCanvas(make(map[image.Image]*ebiten.Image)),
	}
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if now := time.Now(); now.Sub(g.lastTick) >= g.interval {
		g.current = g.anim.Tick(now)
		g.lastTick = now
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.reset(screen)
	if _, err := g.scene.Render(g.canvas, g.width, g.height, g.current.Preset); err != nil {
		g.err = err
	}
}

func (g *game) Layout(int, int) (int, int) { return g.width, g.height }

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	glyphDir := flag.String("glyphs", "", "Directory with F/U/stripes image overrides")
	interval := flag.Int("interval", 0, "Milliseconds between frames (default: 1100)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	logging.SetLogger(logging.New(os.Stderr, *verbose))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{GlyphDir: *glyphDir, IntervalMS: *interval})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	glyphs := glyph.NewCache(glyph.BuildIndex(cfg.GlyphDir))
	if err := glyphs.Preload(glyph.Names...); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading glyphs: %v\n", err)
		os.Exit(1)
	}

	sc := scene.New(glyphs)
	sc.Window = *cfg.Window
	sc.PreserveAspect = *cfg.PreserveAspect
	sc.Background = cfg.BackgroundColor().Color()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Glyph Animator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(newGame(sc, cfg.Interval(), cfg.Width, cfg.Height)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
