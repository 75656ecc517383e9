// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// UserRequest represents the request body for creating or replacing a user.
type UserRequest struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Weight        float64  `json:"weight"`
	Height        float64  `json:"height"`
	Sex           string   `json:"sex"`
	GymAttendance bool     `json:"gym_attendance"`
	GoalWeight    *float64 `json:"goal_weight,omitempty"`
}

// WaterLogRequest represents the request body for logging water intake.
type WaterLogRequest struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// ProgressLogRequest represents the request body for logging a weight snapshot.
type ProgressLogRequest struct {
	UserID string  `json:"user_id"`
	Weight float64 `json:"weight"`
}

// WaterGoalResponse represents the computed daily water intake goal.
type WaterGoalResponse struct {
	UserID          string  `json:"user_id"`
	DailyGoalMl     float64 `json:"daily_goal_ml"`
	DailyGoalLiters float64 `json:"daily_goal_liters"`
}

// BMIResponse represents the computed body mass index.
type BMIResponse struct {
	UserID string  `json:"user_id"`
	BMI    float64 `json:"bmi"`
	Status string  `json:"status"`
	Color  string  `json:"color"`
}

// MotivationResponse carries a single motivational message.
type MotivationResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
