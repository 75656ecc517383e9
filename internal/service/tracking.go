package service

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/vitalog/vitalog/internal/metrics"
	"github.com/vitalog/vitalog/internal/model"
	"github.com/vitalog/vitalog/internal/repository"
)

// TrackingService handles append-only daily logs (water intake, body weight).
type TrackingService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(repo *repository.Repository, recorder metrics.Recorder) *TrackingService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TrackingService{
		repo:    repo,
		metrics: recorder,
	}
}

// LogWater records a water intake for a user. The calendar day is the
// server-side UTC date at write time; clients never supply it.
func (s *TrackingService) LogWater(ctx context.Context, userID string, amountMl float64) (*model.WaterLog, error) {
	if amountMl <= 0 {
		return nil, ErrInvalidAmount
	}

	// Writes require an existing user; reads tolerate unknown ids.
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	log := &model.WaterLog{
		ID:        ulid.Make().String(),
		UserID:    userID,
		AmountMl:  amountMl,
		Date:      now.Format(model.DateLayout),
		Timestamp: now,
	}

	if err := s.repo.CreateWaterLog(ctx, log); err != nil {
		return nil, err
	}

	s.metrics.IncWaterLogged()

	return log, nil
}

// WaterLogs returns a user's water logs for a calendar day, oldest first.
// An empty date defaults to the current UTC day.
func (s *TrackingService) WaterLogs(ctx context.Context, userID, date string) ([]*model.WaterLog, error) {
	if date == "" {
		date = time.Now().UTC().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	return s.repo.ListWaterLogs(ctx, userID, date)
}

// LogProgress records a body-weight snapshot for a user.
func (s *TrackingService) LogProgress(ctx context.Context, userID string, weightKg float64) (*model.ProgressLog, error) {
	if weightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	log := &model.ProgressLog{
		ID:        ulid.Make().String(),
		UserID:    userID,
		WeightKg:  weightKg,
		Date:      now.Format(model.DateLayout),
		Timestamp: now,
	}

	if err := s.repo.CreateProgressLog(ctx, log); err != nil {
		return nil, err
	}

	s.metrics.IncProgressLogged()

	return log, nil
}

// Progress returns all of a user's body-weight snapshots in ascending
// date order.
func (s *TrackingService) Progress(ctx context.Context, userID string) ([]*model.ProgressLog, error) {
	return s.repo.ListProgressLogs(ctx, userID)
}
