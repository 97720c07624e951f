package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instrumentation for the viewer. The counters
// are always maintained in-process; they are only exported over HTTP when the
// debug metrics listener is explicitly enabled.
type Metrics struct {
	FramesRendered prometheus.Counter
	FrameDuration  prometheus.Histogram

	ScenesBuilt  prometheus.Counter
	SceneObjects prometheus.Histogram

	ForecastRuns    prometheus.Counter
	SeasonsForecast prometheus.Counter

	HitTests     *prometheus.CounterVec // labels: result={hit,miss}
	ScrollEvents *prometheus.CounterVec // labels: result={applied,clamped}
}

// NewMetrics creates and registers all viewer metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FramesRendered,
		m.FrameDuration,
		m.ScenesBuilt,
		m.SceneObjects,
		m.ForecastRuns,
		m.SeasonsForecast,
		m.HitTests,
		m.ScrollEvents,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FramesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fireviz",
			Name:      "frames_rendered_total",
			Help:      "Total frames drawn to the rendering surface.",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fireviz",
			Name:      "frame_duration_seconds",
			Help:      "Duration of a complete update-and-draw frame.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.016, 0.033, 0.066, 0.1, 0.25},
		}),
		ScenesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fireviz",
			Name:      "scenes_built_total",
			Help:      "Total scene rebuilds triggered by season navigation.",
		}),
		SceneObjects: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fireviz",
			Name:      "scene_objects",
			Help:      "Number of scrollable objects per built scene.",
			Buckets:   []float64{3, 5, 6, 7, 8, 9, 10},
		}),
		ForecastRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fireviz",
			Name:      "forecast_runs_total",
			Help:      "Total forecast computations (normally one per launch).",
		}),
		SeasonsForecast: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fireviz",
			Name:      "seasons_forecast_total",
			Help:      "Total synthetic seasons registered by the forecaster.",
		}),
		HitTests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fireviz",
			Name:      "hit_tests_total",
			Help:      "Pointer hit tests by result.",
		}, []string{"result"}),
		ScrollEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fireviz",
			Name:      "scroll_events_total",
			Help:      "Scroll requests by result.",
		}, []string{"result"}),
	}
}
