package glyph

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Glyph names used by the slideshow.
const (
	NameF       = "F"
	NameU       = "U"
	NameStripes = "stripes"
)

// Names lists every glyph in draw order.
var Names = []string{NameF, NameU, NameStripes}

type rect struct{ x, y, w, h float64 }

// Block letters on a 20x30 grid, y up.
var letters = map[string][]rect{
	NameF: {
		{0, 0, 5, 30},
		{0, 25, 20, 5},
		{0, 13, 15, 5},
	},
	NameU: {
		{0, 0, 5, 30},
		{15, 0, 5, 30},
		{0, 0, 20, 5},
	},
}

var letterColor = map[string]gg.RGBA{
	NameF: gg.Hex("#1f3fbf"),
	NameU: gg.Hex("#bf1f3f"),
}

var stripeColors = []gg.RGBA{
	gg.Hex("#d01c1c"),
	gg.Hex("#ffffff"),
	gg.Hex("#1c8a2e"),
}

// Generate rasterizes the built-in bitmap for name. Shape y coordinates
// are used as image rows unchanged, so the stored bitmap is upside down and
// reads upright under a viewport with Bottom < Top.
func Generate(name string) (*image.NRGBA, error) {
	switch name {
	case NameF, NameU:
		return drawLetter(letters[name], letterColor[name])
	case NameStripes:
		return drawStripes(30, 30, 5)
	}
	return nil, fmt.Errorf("glyph: no built-in glyph %q", name)
}

func drawLetter(parts []rect, col gg.RGBA) (*image.NRGBA, error) {
	dc := gg.NewContext(20, 30)
	defer dc.Close()

	dc.SetRGBA(col.R, col.G, col.B, col.A)
	for _, p := range parts {
		dc.DrawRectangle(p.x, p.y, p.w, p.h)
	}
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("glyph: fill letter: %w", err)
	}
	return toNRGBA(dc.Image()), nil
}

// drawStripes paints diagonal bands of width band, cycling stripeColors.
func drawStripes(w, h int, band float64) (*image.NRGBA, error) {
	dc := gg.NewContext(w, h)
	defer dc.Close()

	fw, fh := float64(w), float64(h)
	for i, x := 0, -fh; x < fw; i, x = i+1, x+band {
		col := stripeColors[i%len(stripeColors)]
		dc.SetRGBA(col.R, col.G, col.B, col.A)
		dc.MoveTo(x, fh)
		dc.LineTo(x+band, fh)
		dc.LineTo(x+band+fh, 0)
		dc.LineTo(x+fh, 0)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("glyph: fill stripe %d: %w", i, err)
		}
	}
	return toNRGBA(dc.Image()), nil
}
