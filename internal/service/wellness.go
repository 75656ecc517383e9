package service

import (
	"context"
	"errors"

	"github.com/vitalog/vitalog/internal/content"
	"github.com/vitalog/vitalog/internal/repository"
	"github.com/vitalog/vitalog/internal/wellness"
)

// WellnessService derives recommendations from a stored user profile.
type WellnessService struct {
	repo *repository.Repository
}

// NewWellnessService creates a new WellnessService.
func NewWellnessService(repo *repository.Repository) *WellnessService {
	return &WellnessService{repo: repo}
}

// WaterGoalFor computes the daily water intake goal from the user's
// current weight.
func (s *WellnessService) WaterGoalFor(ctx context.Context, userID string) (wellness.WaterGoal, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return wellness.WaterGoal{}, ErrUserNotFound
		}
		return wellness.WaterGoal{}, err
	}

	return wellness.DailyWaterGoal(user.WeightKg)
}

// BMIFor computes the user's body mass index with its category band.
func (s *WellnessService) BMIFor(ctx context.Context, userID string) (wellness.BMIResult, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return wellness.BMIResult{}, ErrUserNotFound
		}
		return wellness.BMIResult{}, err
	}

	return wellness.BMI(user.WeightKg, user.HeightCm)
}

// WorkoutPlanFor selects the workout plan matching the user's gym
// attendance preference.
func (s *WellnessService) WorkoutPlanFor(ctx context.Context, userID string) (content.WorkoutPlan, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return content.WorkoutPlan{}, ErrUserNotFound
		}
		return content.WorkoutPlan{}, err
	}

	return content.WorkoutPlanFor(user.GymAttendance), nil
}
