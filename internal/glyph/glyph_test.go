package glyph

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateLetterF(t *testing.T) {
	img, err := Generate(NameF)
	if err != nil {
		t.Fatalf("Generate(F) error = %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{20, 30}) {
		t.Fatalf("size = %v, want 20x30", got)
	}

	opaque := []image.Point{{2, 15}, {10, 27}, {10, 15}}
	for _, p := range opaque {
		if a := img.NRGBAAt(p.X, p.Y).A; a < 200 {
			t.Errorf("pixel %v alpha = %d, want opaque", p, a)
		}
	}
	clear := []image.Point{{10, 8}, {18, 15}, {12, 21}}
	for _, p := range clear {
		if a := img.NRGBAAt(p.X, p.Y).A; a > 50 {
			t.Errorf("pixel %v alpha = %d, want transparent", p, a)
		}
	}
}

func TestGenerateLetterU(t *testing.T) {
	img, err := Generate(NameU)
	if err != nil {
		t.Fatalf("Generate(U) error = %v", err)
	}
	// Stored upside down: the bottom bar occupies the first rows.
	if a := img.NRGBAAt(10, 2).A; a < 200 {
		t.Errorf("bottom bar alpha = %d, want opaque", a)
	}
	if a := img.NRGBAAt(10, 28).A; a > 50 {
		t.Errorf("gap alpha = %d, want transparent", a)
	}
}

func TestGenerateStripes(t *testing.T) {
	img, err := Generate(NameStripes)
	if err != nil {
		t.Fatalf("Generate(stripes) error = %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{30, 30}) {
		t.Fatalf("size = %v, want 30x30", got)
	}
	if a := img.NRGBAAt(16, 16).A; a < 200 {
		t.Errorf("centre alpha = %d, want opaque", a)
	}
}

func TestGenerateUnknown(t *testing.T) {
	if _, err := Generate("Q"); err == nil {
		t.Error("Generate(Q) error = nil, want error")
	}
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "f.png"), 2, 2, color.White)
	for _, name := range []string{"F.jpg", "u.tga", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "stripes.png"), 0755); err != nil {
		t.Fatal(err)
	}

	idx := BuildIndex(dir)
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
	if p, ok := idx.ResolvePath("F"); !ok || filepath.Base(p) != "f.png" {
		t.Errorf("ResolvePath(F) = %q, %v; want f.png", p, ok)
	}
	if p, ok := idx.ResolvePath("u"); !ok || filepath.Base(p) != "u.tga" {
		t.Errorf("ResolvePath(u) = %q, %v; want u.tga", p, ok)
	}
	if _, ok := idx.ResolvePath("stripes"); ok {
		t.Error("directory indexed as glyph")
	}
}

func TestBuildIndexEmptyDir(t *testing.T) {
	if n := BuildIndex("").Len(); n != 0 {
		t.Errorf("BuildIndex(\"\").Len() = %d, want 0", n)
	}
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "F.png"), 3, 3, color.NRGBA{0, 0, 255, 255})
	if err := os.WriteFile(filepath.Join(dir, "U.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewCache(BuildIndex(dir))

	f, err := c.Resolve(NameF)
	if err != nil {
		t.Fatalf("Resolve(F) error = %v", err)
	}
	if got := f.Bounds().Size(); got != (image.Point{3, 3}) {
		t.Errorf("override size = %v, want 3x3", got)
	}
	if got := f.NRGBAAt(1, 1); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("override pixel = %v, want blue", got)
	}

	again, _ := c.Resolve(NameF)
	if again != f {
		t.Error("second Resolve returned a different image")
	}

	u, err := c.Resolve(NameU)
	if err != nil {
		t.Fatalf("Resolve(U) with broken override error = %v", err)
	}
	if got := u.Bounds().Size(); got != (image.Point{20, 30}) {
		t.Errorf("fallback size = %v, want built-in 20x30", got)
	}

	if _, err := c.Resolve("missing"); err == nil {
		t.Error("Resolve(missing) error = nil, want error")
	}
}

func TestCachePreload(t *testing.T) {
	c := NewCache(nil)
	if err := c.Preload(Names...); err != nil {
		t.Fatalf("Preload() error = %v", err)
	}
	if err := c.Preload("F", "nope"); err == nil {
		t.Error("Preload(nope) error = nil, want error")
	}
}
