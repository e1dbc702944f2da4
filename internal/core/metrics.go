package core

import "time"

// Recorder defines the interface for recording application metrics.
// Implementations include Metrics (Prometheus-based) and NoopMetrics (no-op).
type Recorder interface {
	// Authentication pipeline
	RecordAuthAttempt(method, result string, duration time.Duration)
	RecordRiskScore(score int)
	RecordRiskRule(rule string)
	RecordMFAChallenge()

	// Session tokens
	RecordSessionIssued(method string)
	RecordSessionValidation(valid bool, duration time.Duration)

	// Credential store
	RecordUserLookup(result string)
}
