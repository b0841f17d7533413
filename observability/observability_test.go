package observability_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/observability"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := observability.NewLogger(&buf, "debug", observability.FormatJSON)
	require.NoError(t, err)
	l.WithField("algorithm", "bubble").Debug("trace built")
	assert.Contains(t, buf.String(), `"algorithm":"bubble"`)
	assert.Contains(t, buf.String(), `"msg":"trace built"`)

	buf.Reset()
	l, err = observability.NewLogger(&buf, "warn", observability.FormatText)
	require.NoError(t, err)
	l.Info("hidden")
	assert.Empty(t, buf.String())

	_, err = observability.NewLogger(&buf, "loud", observability.FormatText)
	assert.Error(t, err)
	_, err = observability.NewLogger(&buf, "info", "xml")
	assert.ErrorIs(t, err, observability.ErrLogFormat)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { observability.Discard().WithField("k", 1).Error("dropped") })
}

func TestMetrics(t *testing.T) {
	m := observability.NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.TraceBuilt("bubble", 19)
	m.TraceBuilt("bubble", 7)
	m.InputRejected("radix")
	m.Tick()
	m.Tick()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TracesBuilt.WithLabelValues("bubble")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InputsRejected.WithLabelValues("radix")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PlaybackTicks))

	expected := `
# HELP stepviz_playback_ticks_total Autoplay timer ticks that advanced a cursor.
# TYPE stepviz_playback_ticks_total counter
stepviz_playback_ticks_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "stepviz_playback_ticks_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TracesBuilt))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TraceSteps))

	// second registration collides
	assert.Error(t, m.Register(reg))
}

func TestMetrics_Nil(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.TraceBuilt("x", 1)
		m.InputRejected("x")
		m.Tick()
	})
}
