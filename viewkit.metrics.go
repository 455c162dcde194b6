package viewkit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// renderMetrics holds the collectors updated by Manager.Render.
type renderMetrics struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newRenderMetrics creates the render collectors and registers them on reg.
func newRenderMetrics(reg prometheus.Registerer) (*renderMetrics, error) {
	m := &renderMetrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricRendersTotal,
			Help:      MetricRendersHelp,
		}, []string{MetricLabelEngine, MetricLabelResult}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: MetricNamespace,
			Name:      MetricRenderDuration,
			Help:      MetricRenderDurHelp,
			Buckets:   prometheus.DefBuckets,
		}, []string{MetricLabelEngine}),
	}

	for _, c := range []prometheus.Collector{m.renders, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observe records one render. A nil receiver is a no-op.
func (m *renderMetrics) observe(engine, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(engine, result).Inc()
	if result == MetricResultSuccess || result == MetricResultError {
		m.duration.WithLabelValues(engine).Observe(elapsed.Seconds())
	}
}
