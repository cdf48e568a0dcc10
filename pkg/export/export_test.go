package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/hostelmeal/core/model"
	"github.com/kilianp07/hostelmeal/core/prediction"
)

func outcome(meal model.MealType, total int, pct float64) prediction.Outcome {
	in := model.PredictionInput{FestivalName: "Diwali", Date: "2026-11-08", TotalStudents: total, MealType: meal, AttendancePercentage: pct}
	h, _ := prediction.HintsFor(meal)
	return prediction.Outcome{Input: in, Result: prediction.NewStandardEngine().Predict(in), Hints: h}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []prediction.Outcome{
		outcome(model.MealLunch, 500, 80),
		outcome(model.MealBreakfast, 100, 50),
	}))
	want := "meal_type,expected_attendees,rice_kg,vegetables_kg,oil_l,dal_kg,chapati\n" +
		"Lunch,400,60.0,80.0,6.00,40.0,1200\n" +
		"Breakfast,50,0.0,10.0,0.75,0.0,100\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePlanCSV(t *testing.T) {
	plan := prediction.PredictDay(prediction.NewStandardEngine(), []model.PredictionInput{
		outcome(model.MealBreakfast, 100, 50).Input,
		outcome(model.MealDinner, 7, 100).Input,
	})
	var buf bytes.Buffer
	require.NoError(t, WritePlanCSV(&buf, plan))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Dinner,7,1.1,1.4,0.11,0.7,21", lines[2])
	assert.Equal(t, "Total,57,1.1,11.4,0.86,0.7,121", lines[3])
}

func TestWriteCards_BreakfastOmitsRiceAndDal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCards(&buf, outcome(model.MealBreakfast, 100, 50)))
	out := buf.String()
	assert.Contains(t, out, "Expected attendees: 50 out of 100 students")
	assert.Contains(t, out, "0.75 L")
	assert.Contains(t, out, "(2 per person)")
	assert.NotContains(t, out, "Rice")
	assert.NotContains(t, out, "Dal")
}

func TestWriteCards_Lunch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCards(&buf, outcome(model.MealLunch, 333, 100)))
	out := buf.String()
	assert.Contains(t, out, "66.6 kg")
	assert.Contains(t, out, "(150g per person)")
	assert.Contains(t, out, "999 pieces")
}

func TestWritePlanCards(t *testing.T) {
	plan := prediction.PredictDay(prediction.NewStandardEngine(), []model.PredictionInput{
		outcome(model.MealLunch, 500, 80).Input,
	})
	var buf bytes.Buffer
	require.NoError(t, WritePlanCards(&buf, plan))
	assert.Contains(t, buf.String(), "Day total: 400 servings, rice 60.0 kg")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, outcome(model.MealDinner, 0, 80)))
	var back prediction.Outcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, model.PredictionResult{}, back.Result)
	assert.Equal(t, model.MealDinner, back.Input.MealType)
}
