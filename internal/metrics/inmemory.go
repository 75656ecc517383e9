package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated        uint64
	UsersUpdated        uint64
	WaterLogsCreated    uint64
	ProgressLogsCreated uint64
	MotivationsServed   uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersCreated        uint64
	usersUpdated        uint64
	waterLogsCreated    uint64
	progressLogsCreated uint64
	motivationsServed   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:        atomic.LoadUint64(&m.usersCreated),
		UsersUpdated:        atomic.LoadUint64(&m.usersUpdated),
		WaterLogsCreated:    atomic.LoadUint64(&m.waterLogsCreated),
		ProgressLogsCreated: atomic.LoadUint64(&m.progressLogsCreated),
		MotivationsServed:   atomic.LoadUint64(&m.motivationsServed),
	}
}

// IncUserCreated increments the user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserUpdated increments the user updated counter.
func (m *InMemoryRecorder) IncUserUpdated() {
	atomic.AddUint64(&m.usersUpdated, 1)
}

// IncWaterLogged increments the water log counter.
func (m *InMemoryRecorder) IncWaterLogged() {
	atomic.AddUint64(&m.waterLogsCreated, 1)
}

// IncProgressLogged increments the progress log counter.
func (m *InMemoryRecorder) IncProgressLogged() {
	atomic.AddUint64(&m.progressLogsCreated, 1)
}

// IncMotivationServed increments the motivation counter.
func (m *InMemoryRecorder) IncMotivationServed() {
	atomic.AddUint64(&m.motivationsServed, 1)
}
