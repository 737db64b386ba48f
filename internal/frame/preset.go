package frame

import (
	"math"

	"github.com/gogpu/gg"

	"glyph-animator/internal/glyph"
)

// Count is the number of distinct frames in one animation cycle.
const Count = 6

// Preset holds the global transform parameters active during one tick.
type Preset struct {
	TranslateX, TranslateY float64
	Rotation               float64 // radians
	ScaleX, ScaleY         float64
}

// Identity returns the untransformed preset.
func Identity() Preset {
	return Preset{ScaleX: 1, ScaleY: 1}
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

// Apply returns the preset for frame, starting from prev.
// Only frame 1 resets every field; the other frames overwrite the fields
// they name and carry the rest forward. Frames outside 1..6, including 0,
// leave prev untouched.
func Apply(prev Preset, frame int) Preset {
	p := prev
	switch frame {
	case 1:
		p = Identity()
	case 2:
		p.Rotation = -deg2rad(90)
	case 3:
		p.TranslateX = -5
		p.TranslateY = 7
	case 4:
		p.Rotation = deg2rad(45)
	case 5:
		p.Rotation = -deg2rad(90)
	case 6:
		p.ScaleX = 2.0
		p.ScaleY = 0.5
	}
	return p
}

// Sequence folds Apply over frames and returns the preset after each one.
func Sequence(start Preset, frames []int) []Preset {
	out := make([]Preset, len(frames))
	p := start
	for i, f := range frames {
		p = Apply(p, f)
		out[i] = p
	}
	return out
}

// Placement is a glyph's fixed offset from the global translation.
type Placement struct {
	Name   string
	DX, DY float64
}

// Placements returns the three glyph placements in draw order.
func Placements() []Placement {
	return []Placement{
		{Name: glyph.NameF, DX: 20, DY: -40},
		{Name: glyph.NameU, DX: -20, DY: 30},
		{Name: glyph.NameStripes, DX: 40, DY: 30},
	}
}

// Compose returns base * T(p.Translate) * T(pl.D) * R(p.Rotation) * S(p.Scale).
func Compose(base gg.Matrix, p Preset, pl Placement) gg.Matrix {
	return base.
		Multiply(gg.Translate(p.TranslateX, p.TranslateY)).
		Multiply(gg.Translate(pl.DX, pl.DY)).
		Multiply(gg.Rotate(p.Rotation)).
		Multiply(gg.Scale(p.ScaleX, p.ScaleY))
}
