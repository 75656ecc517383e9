package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (NoopRecorder) IncUserCreated() {}

// IncUserUpdated is a no-op.
func (NoopRecorder) IncUserUpdated() {}

// IncWaterLogged is a no-op.
func (NoopRecorder) IncWaterLogged() {}

// IncProgressLogged is a no-op.
func (NoopRecorder) IncProgressLogged() {}

// IncMotivationServed is a no-op.
func (NoopRecorder) IncMotivationServed() {}
