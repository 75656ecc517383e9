package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/model"
)

// CreateWaterLog appends a water intake record.
func (r *Repository) CreateWaterLog(ctx context.Context, log *model.WaterLog) error {
	query := `
		INSERT INTO water_logs (id, user_id, amount_ml, log_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		log.ID,
		log.UserID,
		log.AmountMl,
		log.Date,
		log.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create water log: %w", err)
	}

	return nil
}

// ListWaterLogs retrieves all water logs for a user on a calendar day,
// oldest first. Returns an empty slice when there are none.
func (r *Repository) ListWaterLogs(ctx context.Context, userID, date string) ([]*model.WaterLog, error) {
	query := `
		SELECT id, user_id, amount_ml, log_date, created_at
		FROM water_logs
		WHERE user_id = $1 AND log_date = $2
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list water logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*model.WaterLog, 0)
	for rows.Next() {
		var log model.WaterLog
		var logDate time.Time
		if err := rows.Scan(&log.ID, &log.UserID, &log.AmountMl, &logDate, &log.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan water log: %w", err)
		}
		log.Date = logDate.Format(model.DateLayout)
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating water logs: %w", err)
	}

	return logs, nil
}
