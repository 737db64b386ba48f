package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ErrInvalidViewport is returned for degenerate windows and non-positive
// canvas sizes.
var ErrInvalidViewport = errors.New("viewport: invalid viewport")

// Window is a logical coordinate window. Bottom maps to the last pixel row
// and Top to the first, so Bottom < Top gives a y-up system.
type Window struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// Width returns Right-Left (signed).
func (w Window) Width() float64 { return w.Right - w.Left }

// Height returns Bottom-Top (signed).
func (w Window) Height() float64 { return w.Bottom - w.Top }

// Aspect returns |height/width|.
func (w Window) Aspect() float64 {
	return math.Abs(w.Height() / w.Width())
}

// Validate reports whether the window can be mapped onto a canvas.
func (w Window) Validate() error {
	for _, v := range [...]float64{w.Left, w.Right, w.Bottom, w.Top} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %+v", ErrInvalidViewport, w)
		}
	}
	if w.Right == w.Left {
		return fmt.Errorf("%w: zero width (left=right=%g)", ErrInvalidViewport, w.Left)
	}
	if w.Bottom == w.Top {
		return fmt.Errorf("%w: zero height (bottom=top=%g)", ErrInvalidViewport, w.Top)
	}
	return nil
}

// Mapping is the result of mapping a Window onto a pixel canvas.
type Mapping struct {
	// Window is the logical window after any aspect adjustment.
	Window Window

	ScaleX, ScaleY         float64
	TranslateX, TranslateY float64

	// PixelSize is the logical extent of one pixel, for stroke widths.
	PixelSize float64

	// Matrix is Scale(ScaleX, ScaleY) * Translate(TranslateX, TranslateY).
	Matrix gg.Matrix
}

// Compute maps win onto a width x height pixel canvas.
//
// With preserveAspect the window is stretched to the canvas aspect ratio
// before mapping. A taller canvas shifts Bottom and Top by the same signed
// amount; a wider canvas grows Left and Right outward by half the excess each.
func Compute(width, height int, win Window, preserveAspect bool) (Mapping, error) {
	if width <= 0 || height <= 0 {
		return Mapping{}, fmt.Errorf("%w: canvas %dx%d", ErrInvalidViewport, width, height)
	}
	if err := win.Validate(); err != nil {
		return Mapping{}, err
	}

	w, h := float64(width), float64(height)

	if preserveAspect {
		displayAspect := math.Abs(h / w)
		requestedAspect := win.Aspect()
		if displayAspect > requestedAspect {
			excess := win.Height() * (displayAspect/requestedAspect - 1)
			win.Bottom += excess / 2
			win.Top += excess / 2
		} else if displayAspect < requestedAspect {
			excess := win.Width() * (requestedAspect/displayAspect - 1)
			win.Left -= excess / 2
			win.Right += excess / 2
		}
	}

	m := Mapping{
		Window:     win,
		ScaleX:     w / win.Width(),
		ScaleY:     h / win.Height(),
		TranslateX: -win.Left,
		TranslateY: -win.Top,
	}
	m.Matrix = gg.Scale(m.ScaleX, m.ScaleY).Multiply(gg.Translate(m.TranslateX, m.TranslateY))
	m.PixelSize = math.Max(math.Abs(win.Width()/w), math.Abs(win.Height()/h))
	return m, nil
}

// ToPixel maps a logical point to pixel coordinates.
func (m Mapping) ToPixel(x, y float64) (float64, float64) {
	p := m.Matrix.TransformPoint(gg.Pt(x, y))
	return p.X, p.Y
}

// ToLogical maps a pixel coordinate back into the logical window.
func (m Mapping) ToLogical(px, py float64) (float64, float64) {
	p := m.Matrix.Invert().TransformPoint(gg.Pt(px, py))
	return p.X, p.Y
}
