package playback

import (
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/stepviz/trace"
)

// Controller replays one Trace. The zero value is not usable; call New.
type Controller struct {
	mu sync.Mutex
	// notifyMu serializes OnStep calls; it is taken before mu.
	notifyMu sync.Mutex

	opts    Options
	tr      *trace.Trace
	cursor  int
	playing bool
	speed   Speed
	timer   *clock.Timer
	gen     uint64
	seq     uint64 // bumped on every published cursor change
	closed  bool
}

// New returns an empty, paused Controller.
func New(opts ...Option) *Controller {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Controller{opts: o, speed: o.Speed}
}

// Load replaces the Trace and resets the cursor, cancelling autoplay.
// A nil Trace empties the Controller.
func (c *Controller) Load(tr *trace.Trace) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.stop()
	c.tr, c.cursor, c.playing = tr, 0, false
	c.seq++
	seq := c.seq
	c.log().WithField("steps", tr.Len()).Debug("playback: load")
	c.mu.Unlock()

	c.notify(tr, 0, seq)
}

// Play starts autoplay from the current cursor. It reports false, and does
// nothing, when already playing, on an empty Controller, at the last Step
// or after Close.
func (c *Controller) Play() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.playing || c.tr.Len() == 0 || c.cursor >= c.tr.Len()-1 {
		return false
	}
	c.playing = true
	c.arm()
	c.log().WithField("speed", c.speed).Debug("playback: play")

	return true
}

// Pause stops autoplay and cancels the pending tick.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return
	}
	c.playing = false
	c.stop()
	c.log().Debug("playback: pause")
}

// Next moves one Step forward. It reports whether the call was accepted,
// i.e. the Controller is paused; at the last Step the cursor stays put.
func (c *Controller) Next() bool {
	return c.move(func(cur int) int { return cur + 1 })
}

// Prev moves one Step back, clamped at 0. See Next.
func (c *Controller) Prev() bool {
	return c.move(func(cur int) int { return cur - 1 })
}

// Seek moves to Step i clamped to [0, Len()-1]. See Next.
func (c *Controller) Seek(i int) bool {
	return c.move(func(int) int { return i })
}

func (c *Controller) move(to func(int) int) bool {
	c.mu.Lock()
	if c.closed || c.playing {
		c.mu.Unlock()

		return false
	}
	if c.tr.Len() == 0 {
		c.mu.Unlock()

		return true
	}
	next := c.tr.Clamp(to(c.cursor))
	if next == c.cursor {
		c.mu.Unlock()

		return true
	}
	c.cursor = next
	c.seq++
	tr, seq := c.tr, c.seq
	c.mu.Unlock()

	c.notify(tr, next, seq)

	return true
}

// SetSpeed changes the interval used when the next tick is scheduled; a
// tick already armed keeps its interval.
//
// Errors: ErrInvalidSpeed for a non-preset speed.
func (c *Controller) SetSpeed(s Speed) error {
	if !s.Valid() {
		return ErrInvalidSpeed
	}
	c.mu.Lock()
	c.speed = s
	c.mu.Unlock()

	return nil
}

// Speed returns the current speed.
func (c *Controller) Speed() Speed {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.speed
}

// Reset pauses and returns to the first Step.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.stop()
	changed := c.cursor != 0
	c.cursor, c.playing = 0, false
	if changed {
		c.seq++
	}
	tr, seq := c.tr, c.seq
	c.log().Debug("playback: reset")
	c.mu.Unlock()

	if changed {
		c.notify(tr, 0, seq)
	}
}

// Close cancels autoplay. Every later call is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stop()
	c.playing, c.closed = false, true
}

// Current returns a copy of the Step under the cursor, and false when no
// Trace is loaded.
func (c *Controller) Current() (trace.Step, bool) {
	c.mu.Lock()
	tr, cur := c.tr, c.cursor
	c.mu.Unlock()
	if tr.Len() == 0 {
		return trace.Step{}, false
	}

	return tr.At(cur), true
}

// Trace returns the loaded Trace, or nil.
func (c *Controller) Trace() *trace.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tr
}

// Cursor returns the index of the current Step.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor
}

// Len returns the number of Steps of the loaded Trace.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tr.Len()
}

// IsPlaying reports whether autoplay is running.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.playing
}

// IsAtStart reports whether the cursor is on the first Step.
func (c *Controller) IsAtStart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor == 0
}

// IsAtEnd reports whether the cursor is on the last Step. An empty
// Controller is at its end.
func (c *Controller) IsAtEnd() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor >= c.tr.Len()-1
}

// arm cancels any pending tick and schedules the next one. c.mu is held.
func (c *Controller) arm() {
	c.stop()
	gen := c.gen
	c.timer = c.opts.Clock.AfterFunc(c.speed.Interval(), func() { c.tick(gen) })
}

// stop cancels the pending tick and invalidates any tick already in flight.
// c.mu is held.
func (c *Controller) stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

// tick advances autoplay by one Step. The next tick is armed before the new
// cursor is published, so it is never missed by a caller that observed the
// cursor move.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.playing {
		c.mu.Unlock()

		return
	}
	c.timer = nil
	c.cursor++
	if last := c.tr.Len() - 1; c.cursor >= last {
		c.cursor = last
		c.playing = false
		c.gen++
		c.log().Debug("playback: reached last step")
	} else {
		c.arm()
	}
	c.seq++
	tr, cur, seq := c.tr, c.cursor, c.seq
	c.mu.Unlock()

	c.opts.Metrics.Tick()
	c.notify(tr, cur, seq)
}

// notify hands Step cursor of tr to OnStep unless a later publication
// (seq) superseded it, so the last frame observed is always the current one.
func (c *Controller) notify(tr *trace.Trace, cursor int, seq uint64) {
	if c.opts.OnStep == nil || tr.Len() == 0 {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.mu.Lock()
	stale := seq != c.seq
	c.mu.Unlock()
	if stale {
		return
	}
	c.opts.OnStep(cursor, tr.At(cursor))
}

// log returns the logger with the current position. c.mu is held.
func (c *Controller) log() *logrus.Entry {
	fields := logrus.Fields{"cursor": c.cursor}
	if c.tr != nil {
		fields["algorithm"] = c.tr.Algorithm()
	}

	return c.opts.Log.WithFields(fields)
}
