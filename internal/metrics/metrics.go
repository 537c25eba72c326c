// Package metrics records Prometheus metrics about event translation,
// transport and dispatch.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hazel"

// Custom registry to avoid polluting the default registerer.
var registry = prometheus.NewRegistry()

var (
	translated = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "input",
		Name:      "notifications_total",
		Help:      "Native notifications translated, by notification kind.",
	}, []string{"kind"})

	dropped = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "input",
		Name:      "dropped_total",
		Help:      "Native notifications which translated to no event, by notification kind.",
	}, []string{"kind"})

	presents = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "input",
		Name:      "refresh_presents_total",
		Help:      "Presents performed in response to refresh notifications.",
	})

	sent = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "sent_total",
		Help:      "Events accepted by the transport.",
	})

	filtered = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "filtered_total",
		Help:      "None events discarded at the transport boundary.",
	})

	rejected = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "rejected_total",
		Help:      "Events sent after the transport was closed.",
	})

	depth = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "depth",
		Help:      "Events waiting in the transport.",
	})

	dispatched = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "loop",
		Name:      "dispatched_total",
		Help:      "Events delivered to the application, by category.",
	}, []string{"category"})

	ticks = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "loop",
		Name:      "ticks_total",
		Help:      "Ticks emitted by the loop.",
	})

	tickInterval = promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "loop",
		Name:      "tick_interval_seconds",
		Help:      "Measured time between consecutive ticks.",
		Buckets:   []float64{.004, .008, .012, .016, .017, .018, .020, .025, .033, .050, .1},
	})

	panics = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "loop",
		Name:      "recovered_panics_total",
		Help:      "Application callback panics recovered by the loop.",
	})
)

func init() {
	registry.MustRegister(collectors.NewGoCollector())
}

// Registry returns the registry which holds every hazel metric.
func Registry() *prometheus.Registry {
	return registry
}

// Handler returns an HTTP handler exposing the metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// RecordTranslated records a translated notification of the given kind.
func RecordTranslated(kind string) {
	translated.WithLabelValues(kind).Inc()
}

// RecordDropped records a notification of the given kind that produced no
// event.
func RecordDropped(kind string) {
	dropped.WithLabelValues(kind).Inc()
}

// RecordRefreshPresent records a present caused by a refresh notification.
func RecordRefreshPresent() {
	presents.Inc()
}

// RecordSent records an event accepted by the transport.
func RecordSent() {
	sent.Inc()
}

// RecordFiltered records a None event discarded by the transport.
func RecordFiltered() {
	filtered.Inc()
}

// RecordRejected records a send on a closed transport.
func RecordRejected() {
	rejected.Inc()
}

// UpdateDepth sets the number of events waiting in the transport.
func UpdateDepth(n int) {
	depth.Set(float64(n))
}

// RecordDispatched records an event delivered to the application.
func RecordDispatched(category string) {
	dispatched.WithLabelValues(category).Inc()
}

// RecordTick records a tick and the time since the previous one. A zero
// interval (the first tick) is not observed.
func RecordTick(interval time.Duration) {
	ticks.Inc()
	if interval > 0 {
		tickInterval.Observe(interval.Seconds())
	}
}

// RecordPanic records a recovered callback panic.
func RecordPanic() {
	panics.Inc()
}
