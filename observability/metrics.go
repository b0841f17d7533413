package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stepviz"

// Metrics groups the collectors of one process. Register them with
// Register; a nil *Metrics ignores every observation.
type Metrics struct {
	TracesBuilt    *prometheus.CounterVec
	InputsRejected *prometheus.CounterVec
	PlaybackTicks  prometheus.Counter
	TraceSteps     prometheus.Histogram
}

// NewMetrics returns unregistered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		TracesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traces_built_total",
			Help:      "Traces recorded, by algorithm.",
		}, []string{"algorithm"}),
		InputsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inputs_rejected_total",
			Help:      "Inputs refused by adapter validation, by algorithm.",
		}, []string{"algorithm"}),
		PlaybackTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "playback_ticks_total",
			Help:      "Autoplay timer ticks that advanced a cursor.",
		}),
		TraceSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trace_steps",
			Help:      "Number of steps per recorded trace.",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 12),
		}),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.TracesBuilt, m.InputsRejected, m.PlaybackTicks, m.TraceSteps} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

// TraceBuilt counts one finished trace of steps Steps.
func (m *Metrics) TraceBuilt(algorithm string, steps int) {
	if m == nil {
		return
	}
	m.TracesBuilt.WithLabelValues(algorithm).Inc()
	m.TraceSteps.Observe(float64(steps))
}

// InputRejected counts one input refused by validation.
func (m *Metrics) InputRejected(algorithm string) {
	if m == nil {
		return
	}
	m.InputsRejected.WithLabelValues(algorithm).Inc()
}

// Tick counts one autoplay advance.
func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.PlaybackTicks.Inc()
}
