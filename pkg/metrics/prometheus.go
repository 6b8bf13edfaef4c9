package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can build as many as they like.
type Collector struct {
	registry         *prometheus.Registry
	analysisRequests *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	riskTiers        *prometheus.CounterVec
	degradedRequests prometheus.Counter
	smokeTests       *prometheus.CounterVec
	activeSessions   prometheus.Gauge
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		analysisRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tams_analysis_requests_total",
			Help: "Analysis submissions by outcome",
		}, []string{"outcome"}),
		analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tams_analysis_duration_seconds",
			Help:    "Round-trip time of calls to the TAMS analyze endpoint",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}),
		riskTiers: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tams_risk_tier_total",
			Help: "Completed analyses by overall risk tier",
		}, []string{"tier"}),
		degradedRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "tams_degraded_requests_total",
			Help: "Accepted alerts with missing merchant or user id",
		}),
		smokeTests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tams_smoke_tests_total",
			Help: "Smoke test runs by outcome",
		}, []string{"outcome"}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_active_sessions",
			Help: "Dashboard sessions currently held in memory",
		}),
	}
}

// ObserveAnalysis records one analyze call. outcome is "success", "rejected",
// "busy" or an upstream error kind.
func (c *Collector) ObserveAnalysis(outcome string, elapsed time.Duration) {
	c.analysisRequests.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		c.analysisDuration.Observe(elapsed.Seconds())
	}
}

func (c *Collector) ObserveRiskTier(tier string) {
	c.riskTiers.WithLabelValues(tier).Inc()
}

func (c *Collector) IncDegraded() {
	c.degradedRequests.Inc()
}

func (c *Collector) ObserveSmokeTest(ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	c.smokeTests.WithLabelValues(outcome).Inc()
}

func (c *Collector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
