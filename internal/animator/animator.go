package animator

import (
	"context"
	"time"

	"glyph-animator/internal/frame"
	"glyph-animator/internal/logging"
)

// DefaultInterval is the time between frame advances.
const DefaultInterval = 1100 * time.Millisecond

// Frame is the state produced by one timer tick.
type Frame struct {
	Number  int // cyclic frame number, 0..6
	Tick    int // ticks since start, from 1
	Elapsed time.Duration
	Preset  frame.Preset
}

// Animator advances the slideshow state. It is not safe for concurrent use;
// the timer callback and the renderer are expected to share one goroutine.
type Animator struct {
	counter *frame.Counter
	preset  frame.Preset
	start   time.Time
	ticks   int
}

// New returns an animator at frame 0 with the identity preset.
func New(start time.Time) *Animator {
	return &Animator{
		counter: frame.NewCounter(0),
		preset:  frame.Identity(),
		start:   start,
	}
}

// Current returns the state without advancing.
func (a *Animator) Current(now time.Time) Frame {
	return Frame{
		Number:  a.counter.Current(),
		Tick:    a.ticks,
		Elapsed: now.Sub(a.start),
		Preset:  a.preset,
	}
}

// Tick advances one frame.
func (a *Animator) Tick(now time.Time) Frame {
	a.ticks++
	n := a.counter.Next()
	a.preset = frame.Apply(a.preset, n)

	f := a.Current(now)
	logging.Logger().Info("frame",
		"number", f.Number,
		"elapsed", f.Elapsed.Seconds(),
	)
	return f
}

// Plan returns the first n frames an animator would produce, spaced by
// interval, without waiting.
func Plan(n int, interval time.Duration) []Frame {
	start := time.Time{}
	a := New(start)
	out := make([]Frame, n)
	for i := range out {
		out[i] = a.Tick(start.Add(time.Duration(i+1) * interval))
	}
	return out
}

// Run calls fn with the initial frame, then with each new frame every
// interval until ctx is done or fn fails. maxTicks > 0 stops after that
// many ticks.
func Run(ctx context.Context, interval time.Duration, maxTicks int, fn func(Frame) error) error {
	a := New(time.Now())
	if err := fn(a.Current(time.Now())); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			f := a.Tick(now)
			if err := fn(f); err != nil {
				return err
			}
			if maxTicks > 0 && f.Tick >= maxTicks {
				return nil
			}
		}
	}
}
