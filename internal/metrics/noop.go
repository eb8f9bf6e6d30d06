package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncSignUp is a no-op.
func (n *NoopRecorder) IncSignUp(status string) {}

// IncSignIn is a no-op.
func (n *NoopRecorder) IncSignIn(status string) {}

// IncEntryCreated is a no-op.
func (n *NoopRecorder) IncEntryCreated() {}

// IncEntryUpdated is a no-op.
func (n *NoopRecorder) IncEntryUpdated() {}

// IncEntryDeleted is a no-op.
func (n *NoopRecorder) IncEntryDeleted() {}

// ObserveHTTPRequest is a no-op.
func (n *NoopRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {}
