package scene

import (
	"fmt"
	"image/color"

	"glyph-animator/internal/canvas"
	"glyph-animator/internal/frame"
	"glyph-animator/internal/glyph"
	"glyph-animator/internal/viewport"
)

// Scene is the fixed slideshow: a logical window and three placed glyphs.
type Scene struct {
	Window         viewport.Window
	PreserveAspect bool
	Background     color.Color
	Placements     []frame.Placement
	Glyphs         glyph.Resolver
}

// DefaultWindow is the logical window the slideshow is laid out in.
var DefaultWindow = viewport.Window{Left: -75, Right: 75, Bottom: -75, Top: 75}

// New returns the slideshow scene resolving glyphs from r.
func New(r glyph.Resolver) *Scene {
	return &Scene{
		Window:         DefaultWindow,
		PreserveAspect: true,
		Background:     color.White,
		Placements:     frame.Placements(),
		Glyphs:         r,
	}
}

// Render draws one frame of the scene with preset p onto c, a width x height
// canvas. Every glyph starts from the viewport transform; nothing one glyph
// applies carries over to the next.
func (s *Scene) Render(c canvas.Canvas, width, height int, p frame.Preset) (viewport.Mapping, error) {
	c.FillBackground(s.Background)

	m, err := viewport.Compute(width, height, s.Window, s.PreserveAspect)
	if err != nil {
		return viewport.Mapping{}, err
	}
	c.SetTransform(m.Matrix)

	for _, pl := range s.Placements {
		img, err := s.Glyphs.Resolve(pl.Name)
		if err != nil {
			return m, fmt.Errorf("scene: glyph %s: %w", pl.Name, err)
		}

		c.Save()
		c.Translate(p.TranslateX, p.TranslateY)
		c.Translate(pl.DX, pl.DY)
		c.Rotate(p.Rotation)
		c.Scale(p.ScaleX, p.ScaleY)
		c.DrawImage(img)
		c.Restore()
	}
	return m, nil
}
