package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/model"
)

// CreateProgressLog appends a body-weight snapshot.
func (r *Repository) CreateProgressLog(ctx context.Context, log *model.ProgressLog) error {
	query := `
		INSERT INTO progress_logs (id, user_id, weight_kg, log_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		log.ID,
		log.UserID,
		log.WeightKg,
		log.Date,
		log.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create progress log: %w", err)
	}

	return nil
}

// ListProgressLogs retrieves all progress logs for a user, ascending by
// date then by insertion time. Returns an empty slice when there are none.
func (r *Repository) ListProgressLogs(ctx context.Context, userID string) ([]*model.ProgressLog, error) {
	query := `
		SELECT id, user_id, weight_kg, log_date, created_at
		FROM progress_logs
		WHERE user_id = $1
		ORDER BY log_date ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*model.ProgressLog, 0)
	for rows.Next() {
		var log model.ProgressLog
		var logDate time.Time
		if err := rows.Scan(&log.ID, &log.UserID, &log.WeightKg, &logDate, &log.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan progress log: %w", err)
		}
		log.Date = logDate.Format(model.DateLayout)
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress logs: %w", err)
	}

	return logs, nil
}
