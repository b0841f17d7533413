package session

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/observability"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/registry"
	"github.com/katalvlaran/stepviz/trace"
)

// ErrNoAlgorithm is returned when input is requested before Select.
var ErrNoAlgorithm = errors.New("session: no algorithm selected")

// Options configures a Session. Zero Length, Buckets, Rows, Cols and
// Density keep the algorithm's own profile.
type Options struct {
	Registry *registry.Registry
	Seed     int64
	Length   int
	Buckets  int
	Rows     int
	Cols     int
	Density  float64
	Log      *logrus.Entry
	Metrics  *observability.Metrics
	Playback []playback.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the default registry, seed 0 (the generator
// default) and a discarding logger.
func DefaultOptions() Options {
	return Options{Registry: registry.Default(), Log: observability.Discard()}
}

// WithRegistry replaces the algorithm table.
func WithRegistry(r *registry.Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// WithSeed seeds the input generator.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLength overrides the generated sequence length.
func WithLength(n int) Option {
	return func(o *Options) { o.Length = n }
}

// WithBuckets sets the bucket sort bucket count.
func WithBuckets(k int) Option {
	return func(o *Options) { o.Buckets = k }
}

// WithMaze overrides the generated grid shape and wall density.
func WithMaze(rows, cols int, density float64) Option {
	return func(o *Options) { o.Rows, o.Cols, o.Density = rows, cols, density }
}

// WithLogger sets the logger.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}

// WithMetrics records built traces and rejected inputs.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithPlayback passes options to the Controller.
func WithPlayback(opts ...playback.Option) Option {
	return func(o *Options) { o.Playback = append(o.Playback, opts...) }
}

// Session is one user's run. It is safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	id   uuid.UUID
	opts Options
	gen  *input.Generator
	log  *logrus.Entry
	ctrl *playback.Controller
	alg  registry.Algorithm
	in   registry.Input
}

// New returns a Session with no algorithm selected.
func New(opts ...Option) *Session {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	id := uuid.New()
	log := o.Log.WithField("session", id.String())
	popts := append([]playback.Option{playback.WithLogger(log), playback.WithMetrics(o.Metrics)}, o.Playback...)

	return &Session{
		id:   id,
		opts: o,
		gen:  input.NewGenerator(o.Seed),
		log:  log,
		ctrl: playback.New(popts...),
	}
}

// ID returns the session identifier used in log fields.
func (s *Session) ID() string {
	return s.id.String()
}

// Controller returns the playback Controller of the session.
func (s *Session) Controller() *playback.Controller {
	return s.ctrl
}

// Algorithm returns the selected algorithm, or nil.
func (s *Session) Algorithm() registry.Algorithm {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alg
}

// Input returns the input of the current Trace.
func (s *Session) Input() registry.Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.in
}

// Trace returns the current Trace, or nil.
func (s *Session) Trace() *trace.Trace {
	return s.ctrl.Trace()
}

// Select switches to algorithm id and runs it on freshly generated input.
//
// Errors: registry.ErrUnknownAlgorithm, input.ErrBadProfile.
func (s *Session) Select(id string) error {
	alg, err := s.opts.Registry.Get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in, err := s.generate(alg)
	if err != nil {
		return err
	}

	return s.load(alg, in)
}

// Regenerate runs the selected algorithm on new random input.
//
// Errors: ErrNoAlgorithm, input.ErrBadProfile.
func (s *Session) Regenerate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alg == nil {
		return ErrNoAlgorithm
	}
	in, err := s.generate(s.alg)
	if err != nil {
		return err
	}

	return s.load(s.alg, in)
}

// Submit runs the selected algorithm on caller supplied input. Zero
// Buckets falls back to the session option.
//
// Errors: ErrNoAlgorithm, input.ErrInvalidInput. On error the previous
// Trace stays loaded.
func (s *Session) Submit(in registry.Input) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alg == nil {
		return ErrNoAlgorithm
	}
	if in.Buckets == 0 {
		in.Buckets = s.opts.Buckets
	}

	return s.load(s.alg, in)
}

// Close stops playback.
func (s *Session) Close() {
	s.ctrl.Close()
}

// generate draws input for alg with the session overrides. s.mu is held.
func (s *Session) generate(alg registry.Algorithm) (registry.Input, error) {
	p := alg.Profile().WithLength(s.opts.Length)
	if p.Kind == input.Grid {
		if s.opts.Rows > 0 {
			p.Rows = s.opts.Rows
		}
		if s.opts.Cols > 0 {
			p.Cols = s.opts.Cols
		}
		if s.opts.Density > 0 {
			p.Density = s.opts.Density
		}
	}
	in, err := registry.Generate(alg, s.gen, p)
	if err != nil {
		return registry.Input{}, err
	}
	in.Buckets = s.opts.Buckets

	return in, nil
}

// load runs alg on in and hands the Trace to the Controller. s.mu is held.
func (s *Session) load(alg registry.Algorithm, in registry.Input) error {
	log := s.log.WithField("algorithm", alg.ID())
	tr, err := registry.Run(alg, in)
	if err != nil {
		if errors.Is(err, input.ErrInvalidInput) {
			s.opts.Metrics.InputRejected(alg.ID())
		}
		log.WithError(err).Debug("session: input rejected, keeping previous trace")

		return err
	}
	s.alg, s.in = alg, in
	s.opts.Metrics.TraceBuilt(alg.ID(), tr.Len())
	s.ctrl.Load(tr)
	log.WithField("steps", tr.Len()).Debug("session: trace loaded")

	return nil
}
