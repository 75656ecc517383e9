// Package service provides business logic for the application.
package service

import (
	"errors"
	"fmt"
)

// Service errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")

	ErrNameRequired      = fmt.Errorf("%w: name is required", ErrInvalidInput)
	ErrSexRequired       = fmt.Errorf("%w: sex is required", ErrInvalidInput)
	ErrInvalidAge        = fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	ErrInvalidWeight     = fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	ErrInvalidHeight     = fmt.Errorf("%w: height must be positive", ErrInvalidInput)
	ErrInvalidGoalWeight = fmt.Errorf("%w: goal weight must be positive", ErrInvalidInput)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)

	// ErrInvalidDate is reported separately so handlers can return a
	// date-specific error code.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
)
