package frame

// Counter is the cyclic frame number driven by the animation timer.
// It counts 1..6 and then drops to 0 for one tick before starting over, so
// a full cycle is seven ticks long. Frame 0 has no preset of its own and
// shows frame 6's state again.
type Counter struct {
	n int
}

// NewCounter returns a counter positioned at frame n.
func NewCounter(n int) *Counter {
	return &Counter{n: n}
}

// Current returns the current frame number.
func (c *Counter) Current() int { return c.n }

// Next advances the counter and returns the new frame number.
func (c *Counter) Next() int {
	if c.n > Count-1 {
		c.n = 0
	} else {
		c.n++
	}
	return c.n
}
