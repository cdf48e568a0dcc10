package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/hostelmeal/core/model"
)

func TestRunPredict_CSV(t *testing.T) {
	var buf bytes.Buffer
	err := runPredict(&buf, io.Discard, predictOptions{
		festival: "Diwali", date: "2026-11-08", total: 500, veg: 300, nonVeg: 200,
		meal: "lunch", attendance: 80, format: "csv",
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Lunch,400,60.0,80.0,6.00,40.0,1200", lines[1])
}

func TestPredictCommand_LogsStayOffStdout(t *testing.T) {
	t.Setenv("APP_ENV", "")
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	rootCmd.SetArgs([]string{"predict", "--festival", "Diwali", "--date", "2026-11-08",
		"--total", "500", "--meal", "Lunch", "--attendance", "80", "-o", "csv"})
	require.NoError(t, rootCmd.Execute())

	assert.True(t, strings.HasPrefix(stdout.String(), "meal_type,expected_attendees,"), stdout.String())
	assert.NotContains(t, stdout.String(), "prediction served")
	assert.Contains(t, stderr.String(), "prediction served")
}

func TestPlanCommand_LogsStayOffStdout(t *testing.T) {
	t.Setenv("APP_ENV", "")
	path := filepath.Join(t.TempDir(), "day.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dayPlanYAML), 0o600))

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	rootCmd.SetArgs([]string{"plan", "-f", path, "-o", "json"})
	require.NoError(t, rootCmd.Execute())

	assert.True(t, strings.HasPrefix(stdout.String(), "{"), stdout.String())
	assert.Contains(t, stderr.String(), "prediction served")
}

func TestRunPredict_RejectsInvalidInput(t *testing.T) {
	var buf bytes.Buffer
	err := runPredict(&buf, io.Discard, predictOptions{
		festival: "Holi", date: "2026-03-04", total: 100, meal: "Brunch", attendance: 50, format: "json",
	})
	require.Error(t, err)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "mealType", verr.Field)

	err = runPredict(&buf, io.Discard, predictOptions{
		festival: "Holi", date: "2026-03-04", total: 100, meal: "Dinner", attendance: 120, format: "json",
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "attendancePercentage", verr.Field)
	assert.Empty(t, buf.String())
}

func TestRunPredict_UnknownFormat(t *testing.T) {
	err := runPredict(&bytes.Buffer{}, io.Discard, predictOptions{
		festival: "Holi", date: "2026-03-04", total: 100, meal: "Dinner", attendance: 50, format: "xml",
	})
	assert.ErrorContains(t, err, "unknown format")
}

const dayPlanYAML = `
festivalName: Diwali
date: "2026-11-08"
totalStudents: 1000
vegStudents: 600
nonVegStudents: 400
meals:
  - mealType: Breakfast
    attendancePercentage: 50
  - mealType: dinner
    attendancePercentage: 50
`

func TestReadDayPlan(t *testing.T) {
	inputs, err := readDayPlan(strings.NewReader(dayPlanYAML))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, model.MealBreakfast, inputs[0].MealType)
	assert.Equal(t, model.MealDinner, inputs[1].MealType)
	assert.Equal(t, "2026-11-08", inputs[1].Date)
	assert.Equal(t, 1000, inputs[1].TotalStudents)
	assert.Equal(t, 400, inputs[1].NonVegStudents)
}

func TestReadDayPlan_Errors(t *testing.T) {
	_, err := readDayPlan(strings.NewReader("festivalName: x\nmeals:\n  - mealType: Brunch\n"))
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = readDayPlan(strings.NewReader("festival: x\n"))
	assert.ErrorContains(t, err, "decode day plan")
}

func TestRunPlan_CSVTotals(t *testing.T) {
	inputs, err := readDayPlan(strings.NewReader(dayPlanYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runPlan(&buf, io.Discard, inputs, "csv"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Breakfast,500,0.0,100.0,7.50,0.0,1000", lines[1])
	assert.Equal(t, "Dinner,500,75.0,100.0,7.50,50.0,1500", lines[2])
	assert.Equal(t, "Total,1000,75.0,200.0,15.00,50.0,2500", lines[3])
}

func TestRunPlan_EmptyPlan(t *testing.T) {
	err := runPlan(&bytes.Buffer{}, io.Discard, nil, "cards")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
