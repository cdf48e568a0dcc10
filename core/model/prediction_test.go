package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PredictionInput {
	return PredictionInput{
		FestivalName:         "Diwali",
		Date:                 "2026-11-08",
		TotalStudents:        500,
		VegStudents:          300,
		NonVegStudents:       200,
		MealType:             MealLunch,
		AttendancePercentage: 80,
	}
}

func TestParseMealType(t *testing.T) {
	cases := map[string]MealType{
		"Breakfast": MealBreakfast,
		"lunch":     MealLunch,
		" DINNER ":  MealDinner,
	}
	for in, want := range cases {
		got, err := ParseMealType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMealType("Brunch")
	assert.Error(t, err)
}

func TestMealTypeJSON(t *testing.T) {
	in := validInput()
	in.MealType = MealBreakfast
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"mealType":"Breakfast"`)

	var out PredictionInput
	require.NoError(t, json.Unmarshal([]byte(`{"mealType":"dinner"}`), &out))
	assert.Equal(t, MealDinner, out.MealType)

	require.NoError(t, json.Unmarshal([]byte(`{"mealType":"Supper"}`), &out))
	assert.Equal(t, MealUnknown, out.MealType)

	for _, raw := range []string{`2`, `true`, `["Lunch"]`, `{"name":"Lunch"}`} {
		out = PredictionInput{MealType: MealDinner}
		require.NoError(t, json.Unmarshal([]byte(`{"mealType":`+raw+`}`), &out), raw)
		assert.Equal(t, MealUnknown, out.MealType, raw)
		assert.Error(t, out.Validate(), raw)
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validInput().Validate())

	in := validInput()
	in.TotalStudents = 0
	in.AttendancePercentage = 0
	assert.NoError(t, in.Validate())

	in.AttendancePercentage = 100
	assert.NoError(t, in.Validate())

	in.TotalStudents = MaxStudents
	assert.NoError(t, in.Validate())
}

func TestValidate_VegSplitNotCheckedAgainstTotal(t *testing.T) {
	in := validInput()
	in.VegStudents = 1000
	in.NonVegStudents = 1000
	assert.NoError(t, in.Validate())
}

func TestValidate_Fields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*PredictionInput)
	}{
		{"festivalName", func(in *PredictionInput) { in.FestivalName = "  " }},
		{"date", func(in *PredictionInput) { in.Date = "" }},
		{"totalStudents", func(in *PredictionInput) { in.TotalStudents = -1 }},
		{"totalStudents", func(in *PredictionInput) { in.TotalStudents = MaxStudents + 1 }},
		{"totalStudents", func(in *PredictionInput) { in.TotalStudents = 4_000_000_000_000_000_000 }},
		{"vegStudents", func(in *PredictionInput) { in.VegStudents = -5 }},
		{"vegStudents", func(in *PredictionInput) { in.VegStudents = MaxStudents + 1 }},
		{"nonVegStudents", func(in *PredictionInput) { in.NonVegStudents = -5 }},
		{"mealType", func(in *PredictionInput) { in.MealType = MealUnknown }},
		{"attendancePercentage", func(in *PredictionInput) { in.AttendancePercentage = 100.5 }},
		{"attendancePercentage", func(in *PredictionInput) { in.AttendancePercentage = -0.1 }},
		{"attendancePercentage", func(in *PredictionInput) { in.AttendancePercentage = math.NaN() }},
	}
	for _, c := range cases {
		in := validInput()
		c.mutate(&in)
		err := in.Validate()
		require.Error(t, err, c.field)
		assert.True(t, errors.Is(err, ErrInvalidInput), c.field)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), c.field)
		assert.Equal(t, c.field, verr.Field)
	}
}
