package wellness

import (
	"errors"
	"testing"
)

func TestDailyWaterGoal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		weightKg   float64
		wantMl     float64
		wantLiters float64
	}{
		{"80kg", 80, 2800, 2.8},
		{"70kg", 70, 2450, 2.45},
		{"fractional weight", 70.5, 2467.5, 2.47},
		{"light", 45, 1575, 1.58},
		{"heavy", 120, 4200, 4.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DailyWaterGoal(tt.weightKg)
			if err != nil {
				t.Fatalf("DailyWaterGoal(%v): %v", tt.weightKg, err)
			}
			if got.GoalMl != tt.wantMl {
				t.Errorf("GoalMl: got %v, want %v", got.GoalMl, tt.wantMl)
			}
			if got.GoalLiters != tt.wantLiters {
				t.Errorf("GoalLiters: got %v, want %v", got.GoalLiters, tt.wantLiters)
			}
		})
	}
}

func TestDailyWaterGoal_InvalidWeight(t *testing.T) {
	t.Parallel()

	for _, weight := range []float64{0, -1, -80} {
		if _, err := DailyWaterGoal(weight); !errors.Is(err, ErrInvalidMeasurement) {
			t.Errorf("DailyWaterGoal(%v): expected ErrInvalidMeasurement, got %v", weight, err)
		}
	}
}
