package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	SignUps        map[string]uint64
	SignIns        map[string]uint64
	EntriesCreated uint64
	EntriesUpdated uint64
	EntriesDeleted uint64
	HTTPRequests   uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu      sync.Mutex
	signUps map[string]uint64
	signIns map[string]uint64

	entriesCreated uint64
	entriesUpdated uint64
	entriesDeleted uint64
	httpRequests   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		signUps: make(map[string]uint64),
		signIns: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	signUps := make(map[string]uint64, len(m.signUps))
	for k, v := range m.signUps {
		signUps[k] = v
	}
	signIns := make(map[string]uint64, len(m.signIns))
	for k, v := range m.signIns {
		signIns[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		SignUps:        signUps,
		SignIns:        signIns,
		EntriesCreated: atomic.LoadUint64(&m.entriesCreated),
		EntriesUpdated: atomic.LoadUint64(&m.entriesUpdated),
		EntriesDeleted: atomic.LoadUint64(&m.entriesDeleted),
		HTTPRequests:   atomic.LoadUint64(&m.httpRequests),
	}
}

// IncSignUp counts a sign-up attempt by outcome.
func (m *InMemoryRecorder) IncSignUp(status string) {
	m.mu.Lock()
	m.signUps[status]++
	m.mu.Unlock()
}

// IncSignIn counts a sign-in attempt by outcome.
func (m *InMemoryRecorder) IncSignIn(status string) {
	m.mu.Lock()
	m.signIns[status]++
	m.mu.Unlock()
}

// IncEntryCreated increments entry created counter.
func (m *InMemoryRecorder) IncEntryCreated() {
	atomic.AddUint64(&m.entriesCreated, 1)
}

// IncEntryUpdated increments entry updated counter.
func (m *InMemoryRecorder) IncEntryUpdated() {
	atomic.AddUint64(&m.entriesUpdated, 1)
}

// IncEntryDeleted increments entry deleted counter.
func (m *InMemoryRecorder) IncEntryDeleted() {
	atomic.AddUint64(&m.entriesDeleted, 1)
}

// ObserveHTTPRequest counts handled requests.
func (m *InMemoryRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	atomic.AddUint64(&m.httpRequests, 1)
}
