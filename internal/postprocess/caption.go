package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Caption draws text in the 7x13 basic font with its baseline margin pixels
// above the bottom-left corner.
func Caption(img *image.RGBA, text string, col color.Color, margin int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(img.Bounds().Min.X+margin, img.Bounds().Max.Y-margin-face.Descent),
	}
	d.DrawString(text)
}
