package main

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"glyph-animator/internal/canvas"
)

// screenCanvas adapts an ebiten screen image to canvas.Canvas. Source
// images are uploaded once and reused across frames.
type screenCanvas struct {
	canvas.Stack
	screen *ebiten.Image
	images map[image.Image]*ebiten.Image
}

func newScreenCanvas(images map[image.Image]*ebiten.Image) *screenCanvas {
	return &screenCanvas{
		Stack:  canvas.NewStack(),
		images: images,
	}
}

// reset targets screen with an identity transform and empty stack.
func (c *screenCanvas) reset(screen *ebiten.Image) {
	c.screen = screen
	c.Reset()
}

func (c *screenCanvas) FillBackground(col color.Color) {
	c.screen.Fill(col)
}

func (c *screenCanvas) DrawImage(img image.Image) {
	eimg, ok := c.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		c.images[img] = eimg
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(c.Transform())
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(eimg, op)
}

// geoM converts a gg matrix to ebiten's GeoM; both are row-major 2x3.
func geoM(m gg.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}

var _ canvas.Canvas = (*screenCanvas)(nil)
