package canvas

import "github.com/gogpu/gg"

// Stack is the affine transform state shared by Canvas implementations.
// Embedding it supplies every Canvas method except FillBackground and
// DrawImage. Operations post-multiply the current matrix.
type Stack struct {
	matrix gg.Matrix
	saved  []gg.Matrix
}

// NewStack returns a stack holding the identity transform.
func NewStack() Stack {
	return Stack{matrix: gg.Identity(), saved: make([]gg.Matrix, 0, 4)}
}

// Reset restores the identity transform and drops saved states.
func (s *Stack) Reset() {
	s.matrix = gg.Identity()
	s.saved = s.saved[:0]
}

// Translate moves the origin by (x, y) in current coordinates.
func (s *Stack) Translate(x, y float64) {
	s.matrix = s.matrix.Multiply(gg.Translate(x, y))
}

// Rotate turns current coordinates by angle radians.
func (s *Stack) Rotate(angle float64) {
	s.matrix = s.matrix.Multiply(gg.Rotate(angle))
}

// Scale stretches current coordinates by (x, y).
func (s *Stack) Scale(x, y float64) {
	s.matrix = s.matrix.Multiply(gg.Scale(x, y))
}

// Save pushes the current transform.
func (s *Stack) Save() {
	s.saved = append(s.saved, s.matrix)
}

// Restore pops the last saved transform. It is a no-op on an empty stack.
func (s *Stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.matrix = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Depth returns the number of saved transforms.
func (s *Stack) Depth() int { return len(s.saved) }

// Transform returns the current matrix.
func (s *Stack) Transform() gg.Matrix { return s.matrix }

// SetTransform replaces the current matrix, leaving saved states alone.
func (s *Stack) SetTransform(m gg.Matrix) { s.matrix = m }
