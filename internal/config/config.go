package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gogpu/gg"

	"glyph-animator/internal/viewport"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	GlyphDir  string `json:"glyph_dir"`
	OutputDir string `json:"output_dir"`

	// Scene
	Width          int              `json:"width"`
	Height         int              `json:"height"`
	Window         *viewport.Window `json:"window"`
	PreserveAspect *bool            `json:"preserve_aspect"`
	Background     string           `json:"background"`

	// Timing
	IntervalMS int `json:"interval_ms"`
	Ticks      int `json:"ticks"`
	// LiveTicks bounds live mode. It is Ticks as given by the file or
	// flags before the batch default applies; 0 runs until interrupted.
	LiveTicks  int `json:"-"`

	// Output
	Format      string `json:"format"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	Caption     bool   `json:"caption"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	GlyphDir    string
	OutputDir   string
	Format      string
	Width       int
	Height      int
	IntervalMS  int
	Ticks       int
	Supersample int
	Workers     int
}

// Resolve applies flag overrides and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.GlyphDir != "" {
		c.GlyphDir = flags.GlyphDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.IntervalMS > 0 {
		c.IntervalMS = flags.IntervalMS
	}
	if flags.Ticks > 0 {
		c.Ticks = flags.Ticks
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "frames")
	} else if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
	}
	if c.GlyphDir != "" && !filepath.IsAbs(c.GlyphDir) {
		c.GlyphDir = filepath.Join(c.BaseDir, c.GlyphDir)
	}

	// Scene defaults
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Window == nil {
		c.Window = &viewport.Window{Left: -75, Right: 75, Bottom: -75, Top: 75}
	}
	if c.PreserveAspect == nil {
		preserve := true
		c.PreserveAspect = &preserve
	}
	if c.Background == "" {
		c.Background = "#ffffff"
	}

	// Timing and output defaults
	if c.IntervalMS <= 0 {
		c.IntervalMS = 1100
	}
	c.LiveTicks = max(c.Ticks, 0)
	if c.Ticks <= 0 {
		c.Ticks = 7
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks values Resolve cannot default.
func (c *Config) Validate() error {
	switch c.Format {
	case "webp", "png":
	default:
		return fmt.Errorf("config: unsupported format %q", c.Format)
	}
	if c.Window != nil {
		if err := c.Window.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.Background != "" && !isHexColor(c.Background) {
		return fmt.Errorf("config: invalid background colour %q", c.Background)
	}
	return nil
}

// isHexColor reports whether s is 3, 4, 6 or 8 hex digits with an optional
// leading '#', the forms gg.Hex accepts.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Interval returns the timer period.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// BackgroundColor parses Background as a hex colour.
func (c *Config) BackgroundColor() gg.RGBA {
	return gg.Hex(c.Background)
}
