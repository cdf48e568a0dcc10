package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid prediction input")

// MaxStudents bounds every headcount so that quantities stay far inside
// the int range.
const MaxStudents = 1_000_000

// ValidationError names the input field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match validation failures.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks the input before it reaches the prediction engine and
// reports the first offending field.
func (in PredictionInput) Validate() error {
	if strings.TrimSpace(in.FestivalName) == "" {
		return invalid("festivalName", "is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		return invalid("date", "is required")
	}
	counts := []struct {
		field string
		n     int
	}{
		{"totalStudents", in.TotalStudents},
		{"vegStudents", in.VegStudents},
		{"nonVegStudents", in.NonVegStudents},
	}
	for _, c := range counts {
		if c.n < 0 {
			return invalid(c.field, "must not be negative")
		}
		if c.n > MaxStudents {
			return invalid(c.field, fmt.Sprintf("must not exceed %d", MaxStudents))
		}
	}
	if !in.MealType.Valid() {
		return invalid("mealType", "must be one of Breakfast, Lunch, Dinner")
	}
	p := in.AttendancePercentage
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 100 {
		return invalid("attendancePercentage", "must be between 0 and 100")
	}
	return nil
}
