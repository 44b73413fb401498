package service

import "time"

// Outcome labels used by MetricsRecorder.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// MetricsRecorder receives broker-level counters.
type MetricsRecorder interface {
	ObserveTokenRefresh(outcome string)
	ObserveSync(outcome string, elapsed time.Duration)
	ObserveProviderCall(operation string, status int, elapsed time.Duration)
}
