package glyph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"
)

// decoders maps override file extensions to their decoder. The tga package
// registers with an empty magic string, so image.Decode cannot be used to
// sniff formats once it is linked in.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".tga":  tga.Decode,
	".webp": webp.Decode,
}

// Load decodes a PNG, JPEG, TGA or WebP file into an NRGBA image. The
// decoder is chosen by file extension.
func Load(path string) (*image.NRGBA, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("glyph: unknown extension: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: read %s: %w", path, err)
	}

	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("glyph: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
			}
		}
	}
	return dst
}
