package wellness

import "math"

// mlPerKg is the recommended daily intake of water per kilogram of body weight.
const mlPerKg = 35

// WaterGoal holds a daily water intake goal.
type WaterGoal struct {
	GoalMl     float64
	GoalLiters float64
}

// DailyWaterGoal computes the recommended daily water intake for a body
// weight: 35 ml per kg. GoalLiters is rounded to two decimal places.
// Non-positive weight yields ErrInvalidMeasurement.
func DailyWaterGoal(weightKg float64) (WaterGoal, error) {
	if weightKg <= 0 {
		return WaterGoal{}, ErrInvalidMeasurement
	}

	goalMl := weightKg * mlPerKg
	return WaterGoal{
		GoalMl:     goalMl,
		GoalLiters: math.Round(goalMl/1000*100) / 100,
	}, nil
}
