package metrics

import "time"

// NoopMetrics discards every observation. It is used when metrics are disabled.
type NoopMetrics struct{}

var _ Recorder = (*NoopMetrics)(nil)

// NewNoopMetrics creates a new no-operation metrics recorder
func NewNoopMetrics() Recorder {
	return &NoopMetrics{}
}

func (n *NoopMetrics) RecordAuthAttempt(method, result string, duration time.Duration) {}
func (n *NoopMetrics) RecordRiskScore(score int)                                       {}
func (n *NoopMetrics) RecordRiskRule(rule string)                                      {}
func (n *NoopMetrics) RecordMFAChallenge()                                             {}
func (n *NoopMetrics) RecordSessionIssued(method string)                               {}
func (n *NoopMetrics) RecordSessionValidation(valid bool, duration time.Duration)      {}
func (n *NoopMetrics) RecordUserLookup(result string)                                  {}
