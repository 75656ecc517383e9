package model

import "time"

// WaterLog records one water intake for a user.
// Logs are append-only; Date is the server-side UTC calendar day at write
// time and is never supplied by the client.
type WaterLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AmountMl  float64   `json:"amount"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}
