package playback

import (
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/stepviz/observability"
	"github.com/katalvlaran/stepviz/trace"
)

// ErrInvalidSpeed is returned for a speed that is not one of the presets.
var ErrInvalidSpeed = errors.New("playback: invalid speed")

// Speed is the autoplay interval between two ticks.
type Speed time.Duration

// Speed presets. No other interval is accepted.
const (
	Slow   = Speed(1000 * time.Millisecond)
	Medium = Speed(500 * time.Millisecond)
	Fast   = Speed(200 * time.Millisecond)
)

// Speeds lists the presets from slowest to fastest.
var Speeds = []Speed{Slow, Medium, Fast}

// Interval returns s as a time.Duration.
func (s Speed) Interval() time.Duration {
	return time.Duration(s)
}

// Valid reports whether s is a preset.
func (s Speed) Valid() bool {
	return s == Slow || s == Medium || s == Fast
}

// String returns the preset name, or the interval for a non-preset value.
func (s Speed) String() string {
	switch s {
	case Slow:
		return "slow"
	case Medium:
		return "medium"
	case Fast:
		return "fast"
	default:
		return time.Duration(s).String()
	}
}

// ParseSpeed maps "slow", "medium" or "fast" (any case) to its preset.
func ParseSpeed(name string) (Speed, error) {
	for _, s := range Speeds {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidSpeed, "%q", name)
}

// StepFunc observes a cursor change: the new cursor and a copy of its Step.
type StepFunc func(cursor int, step trace.Step)

// Options configures a Controller.
type Options struct {
	Clock   clock.Clock
	Speed   Speed
	Log     *logrus.Entry
	OnStep  StepFunc
	Metrics *observability.Metrics
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the real clock, Medium speed, a discarding logger,
// no observer and no metrics.
func DefaultOptions() Options {
	return Options{
		Clock: clock.New(),
		Speed: Medium,
		Log:   observability.Discard(),
	}
}

// WithClock sets the time source.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithSpeed sets the initial speed. Non-preset values are ignored.
func WithSpeed(s Speed) Option {
	return func(o *Options) {
		if s.Valid() {
			o.Speed = s
		}
	}
}

// WithLogger sets the logger; transitions are logged at debug level.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}

// WithOnStep registers an observer called after every cursor change. fn may
// query the Controller but must not call Load, Next, Prev, Seek or Reset.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMetrics counts autoplay ticks.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
