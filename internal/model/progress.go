package model

import "time"

// ProgressLog records a body-weight snapshot for a user.
// Append-only, queried per user in ascending date order.
type ProgressLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	WeightKg  float64   `json:"weight"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}
