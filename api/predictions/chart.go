package predictions

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/hostelmeal/core/model"
	"github.com/kilianp07/hostelmeal/core/prediction"
)

// NewChartHandler serves GET /api/predictions/chart, rendering the predicted
// quantities of the query's meal as an HTML bar chart.
func NewChartHandler(svc *prediction.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := inputFromQuery(r.URL.Query())
		if err != nil {
			writeValidationError(w, svc.Reject("api", err))
			return
		}
		out, err := svc.Predict("api", in)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := QuantityChart(out).Render(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// QuantityChart builds a bar chart of the kilogram and liter quantities.
// Rice and dal are left out for breakfast, where they are not served.
func QuantityChart(out prediction.Outcome) *charts.Bar {
	in, res := out.Input, out.Result
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s %s (%s)", in.FestivalName, in.MealType, in.Date),
			Subtitle: fmt.Sprintf("%d expected of %d students, %d chapati", res.ExpectedAttendees, in.TotalStudents, res.Chapati),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Item"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "kg / L"}),
	)
	var items []string
	var data []opts.BarData
	add := func(name string, v float64) {
		items = append(items, name)
		data = append(data, opts.BarData{Value: v})
	}
	if in.MealType != model.MealBreakfast {
		add("Rice (kg)", res.Rice)
	}
	add("Vegetables (kg)", res.Vegetables)
	add("Oil (L)", res.Oil)
	if in.MealType != model.MealBreakfast {
		add("Dal (kg)", res.Dal)
	}
	bar.SetXAxis(items).AddSeries("Quantity", data)
	return bar
}

func inputFromQuery(q url.Values) (model.PredictionInput, error) {
	in := model.PredictionInput{
		FestivalName: q.Get("festivalName"),
		Date:         q.Get("date"),
	}
	ints := []struct {
		field string
		dst   *int
	}{
		{"totalStudents", &in.TotalStudents},
		{"vegStudents", &in.VegStudents},
		{"nonVegStudents", &in.NonVegStudents},
	}
	for _, f := range ints {
		raw := q.Get(f.field)
		if raw == "" {
			if f.field == "totalStudents" {
				return in, &model.ValidationError{Field: f.field, Reason: "is required"}
			}
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, &model.ValidationError{Field: f.field, Reason: "must be an integer"}
		}
		*f.dst = n
	}
	raw := q.Get("attendancePercentage")
	if raw == "" {
		return in, &model.ValidationError{Field: "attendancePercentage", Reason: "is required"}
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return in, &model.ValidationError{Field: "attendancePercentage", Reason: "must be a number"}
	}
	in.AttendancePercentage = p
	if raw := q.Get("mealType"); raw != "" {
		mt, err := model.ParseMealType(raw)
		if err != nil {
			return in, &model.ValidationError{Field: "mealType", Reason: "must be one of Breakfast, Lunch, Dinner"}
		}
		in.MealType = mt
	}
	return in, nil
}
