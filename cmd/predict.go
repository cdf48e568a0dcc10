package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/hostelmeal/core/model"
	"github.com/kilianp07/hostelmeal/core/prediction"
	"github.com/kilianp07/hostelmeal/infra/logger"
	"github.com/kilianp07/hostelmeal/pkg/export"
)

type predictOptions struct {
	festival   string
	date       string
	total      int
	veg        int
	nonVeg     int
	meal       string
	attendance float64
	format     string
}

var predictOpts predictOptions

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict quantities for one meal",
	Example: `  hostelmeal predict --festival Diwali --date 2026-11-08 --total 500 --veg 300 --non-veg 200 \
    --meal Lunch --attendance 80`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredict(cmd.OutOrStdout(), cmd.ErrOrStderr(), predictOpts)
	},
}

func init() {
	f := predictCmd.Flags()
	f.StringVar(&predictOpts.festival, "festival", "", "festival or holiday name")
	f.StringVar(&predictOpts.date, "date", "", "date of the meal")
	f.IntVar(&predictOpts.total, "total", 0, "total students in the hostel")
	f.IntVar(&predictOpts.veg, "veg", 0, "vegetarian students")
	f.IntVar(&predictOpts.nonVeg, "non-veg", 0, "non-vegetarian students")
	f.StringVar(&predictOpts.meal, "meal", "Lunch", "meal type: Breakfast, Lunch or Dinner")
	f.Float64Var(&predictOpts.attendance, "attendance", 80, "expected attendance percentage")
	f.StringVarP(&predictOpts.format, "format", "o", "cards", "output format: cards, json or csv")
	_ = predictCmd.MarkFlagRequired("festival")
	_ = predictCmd.MarkFlagRequired("date")
	_ = predictCmd.MarkFlagRequired("total")
	rootCmd.AddCommand(predictCmd)
}

// runPredict writes the prediction to w and its logs to logw.
func runPredict(w, logw io.Writer, o predictOptions) error {
	meal, err := model.ParseMealType(o.meal)
	if err != nil {
		return &model.ValidationError{Field: "mealType", Reason: err.Error()}
	}
	in := model.PredictionInput{
		FestivalName:         o.festival,
		Date:                 o.date,
		TotalStudents:        o.total,
		VegStudents:          o.veg,
		NonVegStudents:       o.nonVeg,
		MealType:             meal,
		AttendancePercentage: o.attendance,
	}
	svc := prediction.NewService(prediction.NewStandardEngine(), nil, logger.NewWithWriter(logw, "cli"))
	out, err := svc.Predict("cli", in)
	if err != nil {
		return err
	}
	switch o.format {
	case "cards":
		return export.WriteCards(w, out)
	case "json":
		return export.WriteJSON(w, out)
	case "csv":
		return export.WriteCSV(w, []prediction.Outcome{out})
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
}
