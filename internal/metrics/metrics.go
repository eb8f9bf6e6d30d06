// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Outcome labels for account metrics.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Recorder captures metric events for the application.
type Recorder interface {
	// Account metrics
	IncSignUp(status string)
	IncSignIn(status string)

	// Entry metrics
	IncEntryCreated()
	IncEntryUpdated()
	IncEntryDeleted()

	// HTTP metrics; route is the chi route pattern, not the raw path.
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
