package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled frame to width x height with CatmullRom
// filtering. image.RGBA is already alpha-premultiplied, so edges against
// transparent pixels do not darken.
func Downsample(img *image.RGBA, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
