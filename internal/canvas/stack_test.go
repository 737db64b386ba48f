package canvas

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestStackPostMultiplies(t *testing.T) {
	s := NewStack()
	if s.Transform() != gg.Identity() {
		t.Fatalf("NewStack() transform = %+v, want identity", s.Transform())
	}

	s.Translate(10, 5)
	s.Rotate(math.Pi / 2)
	s.Scale(2, 3)

	// Scale first, then rotate, then translate.
	p := s.Transform().TransformPoint(gg.Pt(1, 0))
	if math.Abs(p.X-10) > 1e-9 || math.Abs(p.Y-7) > 1e-9 {
		t.Errorf("(1,0) -> (%v, %v), want (10, 7)", p.X, p.Y)
	}
}

func TestStackSaveRestoreReset(t *testing.T) {
	s := NewStack()
	s.Translate(1, 2)
	base := s.Transform()

	s.Save()
	s.Save()
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}
	s.SetTransform(gg.Scale(4, 4))
	s.Restore()
	if s.Transform() != base || s.Depth() != 1 {
		t.Errorf("after Restore: %+v depth %d, want %+v depth 1", s.Transform(), s.Depth(), base)
	}

	s.Reset()
	if s.Transform() != gg.Identity() || s.Depth() != 0 {
		t.Errorf("after Reset: %+v depth %d, want identity depth 0", s.Transform(), s.Depth())
	}
	s.Restore()
	if s.Transform() != gg.Identity() {
		t.Error("Restore on empty stack changed the transform")
	}
}
