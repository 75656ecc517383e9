package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vitalog/vitalog/internal/metrics"
	"github.com/vitalog/vitalog/internal/model"
	"github.com/vitalog/vitalog/internal/repository"
)

// UserService handles user profile business logic.
type UserService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		repo:    repo,
		metrics: recorder,
	}
}

// UserInput defines input for creating or replacing a user profile.
type UserInput struct {
	Name          string
	Age           int
	WeightKg      float64
	HeightCm      float64
	Sex           string
	GymAttendance bool
	GoalWeightKg  *float64
}

func (in UserInput) validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.Sex == "" {
		return ErrSexRequired
	}
	if in.Age <= 0 {
		return ErrInvalidAge
	}
	if in.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if in.HeightCm <= 0 {
		return ErrInvalidHeight
	}
	if in.GoalWeightKg != nil && *in.GoalWeightKg <= 0 {
		return ErrInvalidGoalWeight
	}
	return nil
}

// Create creates a new user profile with a server-assigned id.
func (s *UserService) Create(ctx context.Context, input UserInput) (*model.User, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	user := &model.User{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Age:           input.Age,
		WeightKg:      input.WeightKg,
		HeightCm:      input.HeightCm,
		Sex:           input.Sex,
		GymAttendance: input.GymAttendance,
		GoalWeightKg:  input.GoalWeightKg,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.metrics.IncUserCreated()

	return user, nil
}

// Get retrieves a user profile by id.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update replaces all mutable fields of an existing user profile and
// returns the updated record.
func (s *UserService) Update(ctx context.Context, id string, input UserInput) (*model.User, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	user := &model.User{
		ID:            id,
		Name:          input.Name,
		Age:           input.Age,
		WeightKg:      input.WeightKg,
		HeightCm:      input.HeightCm,
		Sex:           input.Sex,
		GymAttendance: input.GymAttendance,
		GoalWeightKg:  input.GoalWeightKg,
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.metrics.IncUserUpdated()

	// Re-read to pick up the immutable created_at column.
	return s.Get(ctx, id)
}
