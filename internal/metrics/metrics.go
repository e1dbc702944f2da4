package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/go-authgate/riskgate/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the metrics surface used by the authentication pipeline.
type Recorder = core.Recorder

// Ensure Metrics implements Recorder interface at compile time
var _ Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Authentication Metrics
	AuthAttemptsTotal *prometheus.CounterVec
	AuthDuration      *prometheus.HistogramVec
	MFAChallenges     prometheus.Counter

	// Risk Metrics
	RiskScore      prometheus.Histogram
	RiskRulesTotal *prometheus.CounterVec

	// Session Metrics
	SessionsIssuedTotal      *prometheus.CounterVec
	SessionValidationTotal   *prometheus.CounterVec
	SessionValidationLatency prometheus.Histogram

	// Credential Store Metrics
	UserLookupsTotal *prometheus.CounterVec

	// HTTP Request Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init initializes metrics based on enabled flag
// If enabled=true, returns Prometheus-based Metrics
// If enabled=false, returns NoopMetrics (zero overhead)
// Uses sync.Once to ensure Prometheus metrics are only registered once
func Init(enabled bool) Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

// initMetrics creates and registers all Prometheus metrics
func initMetrics() *Metrics {
	return &Metrics{
		AuthAttemptsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskgate_auth_attempts_total",
				Help: "Total number of authentication attempts by method and outcome",
			},
			[]string{"method", "result"},
		),
		AuthDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskgate_auth_duration_seconds",
				Help:    "Time spent in the authentication pipeline",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		MFAChallenges: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "riskgate_mfa_challenges_total",
				Help: "Total number of attempts asked for a second factor",
			},
		),
		RiskScore: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "riskgate_risk_score",
				Help:    "Distribution of computed risk scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		RiskRulesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskgate_risk_rule_hits_total",
				Help: "Total number of times each risk rule contributed to a score",
			},
			[]string{"rule"},
		),
		SessionsIssuedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskgate_sessions_issued_total",
				Help: "Total number of session tokens issued",
			},
			[]string{"method"},
		),
		SessionValidationTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskgate_session_validations_total",
				Help: "Total number of session token validations",
			},
			[]string{"result"}, // valid, invalid
		),
		SessionValidationLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "riskgate_session_validation_duration_seconds",
				Help:    "Time spent validating session tokens",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05},
			},
		),
		UserLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskgate_user_lookups_total",
				Help: "Total number of credential store lookups",
			},
			[]string{"result"}, // hit, miss, not_found, error
		),
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
	}
}

// RecordAuthAttempt records one pass through the pipeline.
func (m *Metrics) RecordAuthAttempt(method, result string, duration time.Duration) {
	m.AuthAttemptsTotal.WithLabelValues(method, result).Inc()
	m.AuthDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func (m *Metrics) RecordRiskScore(score int) {
	m.RiskScore.Observe(float64(score))
}

func (m *Metrics) RecordRiskRule(rule string) {
	m.RiskRulesTotal.WithLabelValues(rule).Inc()
}

func (m *Metrics) RecordMFAChallenge() {
	m.MFAChallenges.Inc()
}

func (m *Metrics) RecordSessionIssued(method string) {
	m.SessionsIssuedTotal.WithLabelValues(method).Inc()
}

// RecordSessionValidation records a verify call and its latency.
func (m *Metrics) RecordSessionValidation(valid bool, duration time.Duration) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	m.SessionValidationTotal.WithLabelValues(result).Inc()
	m.SessionValidationLatency.Observe(duration.Seconds())
}

// RecordUserLookup records a credential store lookup; result is one of
// hit, miss, not_found or error.
func (m *Metrics) RecordUserLookup(result string) {
	m.UserLookupsTotal.WithLabelValues(result).Inc()
}

// recordHTTPRequest is used by HTTPMetricsMiddleware.
func (m *Metrics) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
