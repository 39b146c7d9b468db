// Package metrics exports window manager activity to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/wndstack/internal/application/port"
	"github.com/bnema/wndstack/internal/domain/entity"
)

const namespace = "wndstack"

// WindowMetrics implements port.WindowMetrics with Prometheus collectors.
type WindowMetrics struct {
	registry *prometheus.Registry

	opened     *prometheus.CounterVec
	closed     *prometheus.CounterVec
	hidden     prometheus.Counter
	restored   prometheus.Counter
	failures   *prometheus.CounterVec
	shown      prometheus.Gauge
	cached     prometheus.Gauge
	stackDepth prometheus.Gauge
}

var _ port.WindowMetrics = (*WindowMetrics)(nil)

// NewWindowMetrics creates the collectors and registers them on a private registry.
func NewWindowMetrics() *WindowMetrics {
	m := &WindowMetrics{
		registry: prometheus.NewRegistry(),
		opened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "windows_opened_total",
			Help:      "Windows opened, by category and whether a cached instance was reused.",
		}, []string{"category", "reused"}),
		closed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "windows_closed_total",
			Help:      "Windows closed, by category.",
		}, []string{"category"}),
		hidden: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "windows_hidden_total",
			Help:      "Windows hidden by an open policy.",
		}),
		restored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "windows_restored_total",
			Help:      "Windows restored when the window that hid them closed.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Refused or failed window operations.",
		}, []string{"operation", "reason"}),
		shown: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "windows_shown",
			Help:      "Windows currently shown.",
		}),
		cached: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "windows_cached",
			Help:      "Windows currently cached.",
		}),
		stackDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "visibility_stack_depth",
			Help:      "Frames on the visibility stack.",
		}),
	}
	m.registry.MustRegister(m.opened, m.closed, m.hidden, m.restored, m.failures, m.shown, m.cached, m.stackDepth)
	return m
}

// Registry exposes the underlying registry, mostly for tests and custom exposition.
func (m *WindowMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *WindowMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WindowMetrics) WindowOpened(d *entity.Descriptor, reused bool) {
	label := "false"
	if reused {
		label = "true"
	}
	m.opened.WithLabelValues(d.Category.String(), label).Inc()
}

func (m *WindowMetrics) WindowClosed(d *entity.Descriptor) {
	m.closed.WithLabelValues(d.Category.String()).Inc()
}

func (m *WindowMetrics) WindowsHidden(n int) {
	m.hidden.Add(float64(n))
}

func (m *WindowMetrics) WindowsRestored(n int) {
	m.restored.Add(float64(n))
}

func (m *WindowMetrics) OperationFailed(op, reason string) {
	m.failures.WithLabelValues(op, reason).Inc()
}

func (m *WindowMetrics) Registries(shown, cached, stackDepth int) {
	m.shown.Set(float64(shown))
	m.cached.Set(float64(cached))
	m.stackDepth.Set(float64(stackDepth))
}
