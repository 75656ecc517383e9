package service

import (
	"context"
	"errors"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

// Validation runs before any repository access, so a zero-value service
// is enough to exercise the rejection paths.
func TestCreateUserValidationErrors(t *testing.T) {
	valid := UserInput{
		Name:     "Alice",
		Age:      30,
		WeightKg: 65,
		HeightCm: 170,
		Sex:      "female",
	}

	tests := []struct {
		name    string
		mutate  func(in *UserInput)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(in *UserInput) { in.Name = "" },
			wantErr: ErrNameRequired,
		},
		{
			name:    "missing sex",
			mutate:  func(in *UserInput) { in.Sex = "" },
			wantErr: ErrSexRequired,
		},
		{
			name:    "zero age",
			mutate:  func(in *UserInput) { in.Age = 0 },
			wantErr: ErrInvalidAge,
		},
		{
			name:    "negative age",
			mutate:  func(in *UserInput) { in.Age = -5 },
			wantErr: ErrInvalidAge,
		},
		{
			name:    "zero weight",
			mutate:  func(in *UserInput) { in.WeightKg = 0 },
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "zero height",
			mutate:  func(in *UserInput) { in.HeightCm = 0 },
			wantErr: ErrInvalidHeight,
		},
		{
			name:    "negative goal weight",
			mutate:  func(in *UserInput) { in.GoalWeightKg = floatPtr(-60) },
			wantErr: ErrInvalidGoalWeight,
		},
	}

	svc := &UserService{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Create() error = %v, want it to wrap ErrInvalidInput", err)
			}
		})
	}
}

func TestUpdateUserValidationErrors(t *testing.T) {
	svc := &UserService{}

	_, err := svc.Update(context.Background(), "some-id", UserInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Update() error = %v, want ErrInvalidInput", err)
	}
}
