package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry       *prom.Registry
	buildDuration  prom.Histogram
	buildOutcome   *prom.CounterVec
	sectionEntries *prom.GaugeVec
	droppedRefs    prom.Counter
}

// NewPrometheusRecorder constructs and registers the build metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "wakabuild",
		Name:      "build_duration_seconds",
		Help:      "Total page build duration",
		Buckets:   prom.DefBuckets,
	})
	pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "wakabuild",
		Name:      "build_outcomes_total",
		Help:      "Build outcomes by final status",
	}, []string{"outcome"})
	pr.sectionEntries = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "wakabuild",
		Name:      "section_entries",
		Help:      "Rendered entries per section for the last build",
	}, []string{"section"})
	pr.droppedRefs = prom.NewCounter(prom.CounterOpts{
		Namespace: "wakabuild",
		Name:      "dropped_references_total",
		Help:      "Dangling cross-references omitted from rendered output",
	})
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.sectionEntries, pr.droppedRefs)
	return pr
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncBuildOutcome(outcome string) {
	pr.buildOutcome.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) ObserveSectionEntries(section string, n int) {
	pr.sectionEntries.WithLabelValues(section).Set(float64(n))
}

func (pr *PrometheusRecorder) IncDroppedReferences(n int) {
	pr.droppedRefs.Add(float64(n))
}

// HTTPHandler returns an http.Handler serving the recorder's registry.
func (pr *PrometheusRecorder) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(pr.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
