// Package wellness computes derived health metrics from profile measurements.
// All functions are pure; persistence and user resolution are the caller's job.
package wellness

import (
	"errors"
	"math"
)

// ErrInvalidMeasurement is returned when a formula input is not positive.
var ErrInvalidMeasurement = errors.New("measurement must be positive")

// BMI classification labels.
const (
	StatusUnderweight = "Underweight"
	StatusNormal      = "Normal weight"
	StatusOverweight  = "Overweight"
	StatusObesity     = "Obesity"
)

// Color tokens per classification band (blue, green, amber, red).
const (
	ColorUnderweight = "#3B82F6"
	ColorNormal      = "#10B981"
	ColorOverweight  = "#F59E0B"
	ColorObesity     = "#EF4444"
)

// BMIResult holds a computed body mass index with its classification.
// Value is rounded to one decimal place for display; classification is
// done on the unrounded value.
type BMIResult struct {
	Value  float64
	Status string
	Color  string
}

// BMI computes weight(kg) / height(m)^2 and classifies it into half-open
// bands: [0, 18.5) underweight, [18.5, 25) normal, [25, 30) overweight,
// [30, inf) obesity. Non-positive inputs yield ErrInvalidMeasurement.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return BMIResult{}, ErrInvalidMeasurement
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	result := BMIResult{Value: math.Round(bmi*10) / 10}

	switch {
	case bmi < 18.5:
		result.Status = StatusUnderweight
		result.Color = ColorUnderweight
	case bmi < 25:
		result.Status = StatusNormal
		result.Color = ColorNormal
	case bmi < 30:
		result.Status = StatusOverweight
		result.Color = ColorOverweight
	default:
		result.Status = StatusObesity
		result.Color = ColorObesity
	}

	return result, nil
}
