package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Canvas is a 2D raster target with an affine transform stack.
// Transform operations post-multiply the current matrix, so the last one
// issued is applied to image coordinates first.
type Canvas interface {
	FillBackground(c color.Color)
	// DrawImage draws img with its top-left corner at the current origin.
	DrawImage(img image.Image)

	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	Save()
	Restore()

	Transform() gg.Matrix
	SetTransform(m gg.Matrix)
}

// Raster is a software Canvas backed by an *image.RGBA.
type Raster struct {
	Stack
	dst    *image.RGBA
	interp draw.Transformer
}

// NewRaster allocates a transparent width x height canvas.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Stack:  NewStack(),
		dst:    image.NewRGBA(image.Rect(0, 0, width, height)),
		interp: draw.BiLinear,
	}
}

// SetInterpolator replaces the sampling kernel (bilinear by default).
func (r *Raster) SetInterpolator(t draw.Transformer) {
	r.interp = t
}

// Image returns the backing image. It aliases the canvas pixels.
func (r *Raster) Image() *image.RGBA { return r.dst }

// FillBackground paints every pixel with c, ignoring the transform.
func (r *Raster) FillBackground(c color.Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage composites img over the canvas through the current transform.
func (r *Raster) DrawImage(img image.Image) {
	m := r.Transform()
	// A collapsed axis covers no pixels.
	if m.A*m.E-m.B*m.D == 0 {
		return
	}
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	r.interp.Transform(r.dst, s2d, img, img.Bounds(), draw.Over, nil)
}

var _ Canvas = (*Raster)(nil)
