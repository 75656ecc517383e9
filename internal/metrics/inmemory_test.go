package metrics

import "testing"

func TestInMemoryRecorder_Counters(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()

	rec.IncUserCreated()
	rec.IncUserCreated()
	rec.IncUserUpdated()
	rec.IncWaterLogged()
	rec.IncWaterLogged()
	rec.IncWaterLogged()
	rec.IncProgressLogged()
	rec.IncMotivationServed()

	snap := rec.Snapshot()

	if snap.UsersCreated != 2 {
		t.Errorf("UsersCreated: got %d, want 2", snap.UsersCreated)
	}
	if snap.UsersUpdated != 1 {
		t.Errorf("UsersUpdated: got %d, want 1", snap.UsersUpdated)
	}
	if snap.WaterLogsCreated != 3 {
		t.Errorf("WaterLogsCreated: got %d, want 3", snap.WaterLogsCreated)
	}
	if snap.ProgressLogsCreated != 1 {
		t.Errorf("ProgressLogsCreated: got %d, want 1", snap.ProgressLogsCreated)
	}
	if snap.MotivationsServed != 1 {
		t.Errorf("MotivationsServed: got %d, want 1", snap.MotivationsServed)
	}
}
