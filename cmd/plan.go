package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/hostelmeal/core/model"
	"github.com/kilianp07/hostelmeal/core/prediction"
	"github.com/kilianp07/hostelmeal/infra/logger"
	"github.com/kilianp07/hostelmeal/pkg/export"
)

// dayFile is the YAML layout of a festival day plan.
type dayFile struct {
	FestivalName   string    `yaml:"festivalName"`
	Date           string    `yaml:"date"`
	TotalStudents  int       `yaml:"totalStudents"`
	VegStudents    int       `yaml:"vegStudents"`
	NonVegStudents int       `yaml:"nonVegStudents"`
	Meals          []dayMeal `yaml:"meals"`
}

type dayMeal struct {
	MealType             string  `yaml:"mealType"`
	AttendancePercentage float64 `yaml:"attendancePercentage"`
}

var (
	planFile   string
	planFormat string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Predict every meal of a festival day from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(planFile)
		if err != nil {
			return err
		}
		defer f.Close()
		inputs, err := readDayPlan(f)
		if err != nil {
			return fmt.Errorf("%s: %w", planFile, err)
		}
		return runPlan(cmd.OutOrStdout(), cmd.ErrOrStderr(), inputs, planFormat)
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "day plan YAML file")
	planCmd.Flags().StringVarP(&planFormat, "format", "o", "cards", "output format: cards, json or csv")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

// readDayPlan decodes a day plan into one prediction input per meal.
func readDayPlan(r io.Reader) ([]model.PredictionInput, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var day dayFile
	if err := dec.Decode(&day); err != nil {
		return nil, fmt.Errorf("decode day plan: %w", err)
	}
	inputs := make([]model.PredictionInput, 0, len(day.Meals))
	for i, m := range day.Meals {
		mt, err := model.ParseMealType(m.MealType)
		if err != nil {
			return nil, fmt.Errorf("meal %d: %w", i+1, &model.ValidationError{Field: "mealType", Reason: err.Error()})
		}
		inputs = append(inputs, model.PredictionInput{
			FestivalName:         day.FestivalName,
			Date:                 day.Date,
			TotalStudents:        day.TotalStudents,
			VegStudents:          day.VegStudents,
			NonVegStudents:       day.NonVegStudents,
			MealType:             mt,
			AttendancePercentage: m.AttendancePercentage,
		})
	}
	return inputs, nil
}

func runPlan(w, logw io.Writer, inputs []model.PredictionInput, format string) error {
	svc := prediction.NewService(prediction.NewStandardEngine(), nil, logger.NewWithWriter(logw, "cli"))
	plan, err := svc.PredictDay("cli", inputs)
	if err != nil {
		return err
	}
	switch format {
	case "cards":
		return export.WritePlanCards(w, plan)
	case "json":
		return export.WriteJSON(w, plan)
	case "csv":
		return export.WritePlanCSV(w, plan)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
