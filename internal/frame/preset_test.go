package frame

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"glyph-animator/internal/glyph"
)

const eps = 1e-12

func presetNear(a, b Preset) bool {
	return math.Abs(a.TranslateX-b.TranslateX) < eps &&
		math.Abs(a.TranslateY-b.TranslateY) < eps &&
		math.Abs(a.Rotation-b.Rotation) < eps &&
		math.Abs(a.ScaleX-b.ScaleX) < eps &&
		math.Abs(a.ScaleY-b.ScaleY) < eps
}

func TestApplyFrameOneResets(t *testing.T) {
	starts := []Preset{
		Identity(),
		{TranslateX: -5, TranslateY: 7, Rotation: 1, ScaleX: 2, ScaleY: 0.5},
		{TranslateX: 100, TranslateY: -3, Rotation: -math.Pi, ScaleX: 0, ScaleY: 9},
	}
	for _, s := range starts {
		if got := Apply(s, 1); got != Identity() {
			t.Errorf("Apply(%+v, 1) = %+v, want identity", s, got)
		}
	}
}

func TestApplyCarriesForward(t *testing.T) {
	prev := Preset{TranslateX: 3, TranslateY: 4, Rotation: 0.25, ScaleX: 1.5, ScaleY: 2.5}
	tests := []struct {
		frame int
		want  Preset
	}{
		{0, prev},
		{2, Preset{3, 4, -math.Pi / 2, 1.5, 2.5}},
		{3, Preset{-5, 7, 0.25, 1.5, 2.5}},
		{4, Preset{3, 4, math.Pi / 4, 1.5, 2.5}},
		{5, Preset{3, 4, -math.Pi / 2, 1.5, 2.5}},
		{6, Preset{3, 4, 0.25, 2.0, 0.5}},
		{7, prev},
		{-1, prev},
	}
	for _, tt := range tests {
		if got := Apply(prev, tt.frame); !presetNear(got, tt.want) {
			t.Errorf("Apply(prev, %d) = %+v, want %+v", tt.frame, got, tt.want)
		}
	}
}

func TestCycleSequence(t *testing.T) {
	c := NewCounter(0)
	var frames []int
	for i := 0; i < 8; i++ {
		frames = append(frames, c.Next())
	}
	wantFrames := []int{1, 2, 3, 4, 5, 6, 0, 1}
	for i := range wantFrames {
		if frames[i] != wantFrames[i] {
			t.Fatalf("frames = %v, want %v", frames, wantFrames)
		}
	}

	got := Sequence(Identity(), frames)
	want := []Preset{
		{0, 0, 0, 1, 1},
		{0, 0, -math.Pi / 2, 1, 1},
		{-5, 7, -math.Pi / 2, 1, 1},
		{-5, 7, math.Pi / 4, 1, 1},
		{-5, 7, -math.Pi / 2, 1, 1},
		{-5, 7, -math.Pi / 2, 2, 0.5},
		// Frame 0 repeats frame 6.
		{-5, 7, -math.Pi / 2, 2, 0.5},
		{0, 0, 0, 1, 1},
	}
	for i := range want {
		if !presetNear(got[i], want[i]) {
			t.Errorf("tick %d (frame %d): got %+v, want %+v", i, frames[i], got[i], want[i])
		}
	}
}

func TestCounterStartingPastSix(t *testing.T) {
	c := NewCounter(9)
	if got := c.Next(); got != 0 {
		t.Errorf("Next() from 9 = %d, want 0", got)
	}
	if got := c.Current(); got != 0 {
		t.Errorf("Current() = %d, want 0", got)
	}
}

func TestComposeOrder(t *testing.T) {
	p := Preset{TranslateX: -5, TranslateY: 7, Rotation: math.Pi / 2, ScaleX: 2, ScaleY: 0.5}
	pl := Placement{Name: "F", DX: 20, DY: -40}

	m := Compose(gg.Identity(), p, pl)

	// (1,0) -> scale (2,0) -> rotate 90deg (0,2) -> offset (20,-38) -> global (15,-31)
	got := m.TransformPoint(gg.Pt(1, 0))
	if math.Abs(got.X-15) > 1e-9 || math.Abs(got.Y+31) > 1e-9 {
		t.Errorf("Compose()(1,0) = %+v, want (15, -31)", got)
	}

	// Origin lands on the combined offset regardless of rotation/scale.
	o := m.TransformPoint(gg.Pt(0, 0))
	if math.Abs(o.X-15) > 1e-9 || math.Abs(o.Y+33) > 1e-9 {
		t.Errorf("Compose()(0,0) = %+v, want (15, -33)", o)
	}
}

func TestComposeKeepsBase(t *testing.T) {
	base := gg.Scale(4, -4).Multiply(gg.Translate(100, -75))
	m := Compose(base, Identity(), Placement{DX: 0, DY: 0})
	if m != base {
		t.Errorf("Compose(base, identity, zero) = %+v, want %+v", m, base)
	}
}

func TestPlacements(t *testing.T) {
	ps := Placements()
	want := []Placement{{"F", 20, -40}, {"U", -20, 30}, {"stripes", 40, 30}}
	if len(ps) != len(want) {
		t.Fatalf("len(Placements()) = %d, want %d", len(ps), len(want))
	}
	for i := range want {
		if ps[i] != want[i] {
			t.Errorf("Placements()[%d] = %+v, want %+v", i, ps[i], want[i])
		}
	}
}

func TestPlacementsMatchGlyphNames(t *testing.T) {
	ps := Placements()
	if len(ps) != len(glyph.Names) {
		t.Fatalf("%d placements for %d glyphs", len(ps), len(glyph.Names))
	}
	for i, pl := range ps {
		if pl.Name != glyph.Names[i] {
			t.Errorf("placement %d = %q, want %q", i, pl.Name, glyph.Names[i])
		}
		if _, err := glyph.Generate(pl.Name); err != nil {
			t.Errorf("Generate(%q) error = %v", pl.Name, err)
		}
	}
}
