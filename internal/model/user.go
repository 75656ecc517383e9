// Package model defines domain entities for the application.
package model

import "time"

// DateLayout is the calendar-day format used for daily logs (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Sex values commonly sent by clients. The field is stored as free text;
// these constants exist for readability in tests and seed data.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// User represents a tracked person's profile.
// The ID is assigned at creation and never changes; there is no deletion path.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	WeightKg      float64   `json:"weight"`
	HeightCm      float64   `json:"height"`
	Sex           string    `json:"sex"`
	GymAttendance bool      `json:"gym_attendance"`
	GoalWeightKg  *float64  `json:"goal_weight,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
