package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ledger's Prometheus collectors.
type Metrics struct {
	JobRuns           *prometheus.CounterVec
	JobDuration       *prometheus.HistogramVec
	JobSkipped        *prometheus.CounterVec
	PropertiesAccrued prometheus.Counter
	AccrualFailures   prometheus.Counter
	RequestsExpired   *prometheus.CounterVec
	RequestsAccepted  *prometheus.CounterVec
	Settlements       *prometheus.CounterVec
	EndpointLatency   *prometheus.HistogramVec
}

// New registers every collector on reg. Pass prometheus.DefaultRegisterer in
// processes and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		JobRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_job_runs_total",
			Help: "Scheduled job runs, labeled by job and outcome",
		}, []string{"job", "outcome"}),
		JobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rent_job_duration_seconds",
			Help:    "Duration of scheduled job runs in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"}),
		JobSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_job_skipped_total",
			Help: "Job triggers skipped because a run was already in progress",
		}, []string{"job"}),
		PropertiesAccrued: factory.NewCounter(prometheus.CounterOpts{
			Name: "rent_properties_accrued_total",
			Help: "Rented properties whose balance grew by one month of rent",
		}),
		AccrualFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "rent_accrual_failures_total",
			Help: "Properties skipped by an accrual run after an error",
		}),
		RequestsExpired: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_requests_expired_total",
			Help: "Requests removed by the expiry sweep, labeled by kind",
		}, []string{"kind"}),
		RequestsAccepted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_requests_accepted_total",
			Help: "Requests accepted by owners, labeled by kind",
		}, []string{"kind"}),
		Settlements: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_settlements_total",
			Help: "Payments recorded against balances, labeled by mode",
		}, []string{"mode"}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rent_endpoint_latency_seconds",
			Help:    "Latency of HTTP endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// NewUnregistered is for tests and tools that never expose /metrics.
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ObserveJob(job, outcome string, durationSeconds float64) {
	m.JobRuns.WithLabelValues(job, outcome).Inc()
	m.JobDuration.WithLabelValues(job).Observe(durationSeconds)
}
