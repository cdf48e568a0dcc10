package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/kilianp07/hostelmeal/core/model"
	"github.com/kilianp07/hostelmeal/core/prediction"
)

var csvHeader = []string{"meal_type", "expected_attendees", "rice_kg", "vegetables_kg", "oil_l", "dal_kg", "chapati"}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteCSV writes one row per outcome.
func WriteCSV(w io.Writer, outcomes []prediction.Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range outcomes {
		if err := cw.Write(resultRow(o.Input.MealType.String(), o.Result)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePlanCSV writes one row per meal followed by a Total row.
func WritePlanCSV(w io.Writer, plan prediction.DayPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range plan.Meals {
		if err := cw.Write(resultRow(m.Input.MealType.String(), m.Result)); err != nil {
			return err
		}
	}
	t := plan.Totals
	total := resultRow("Total", model.PredictionResult{
		ExpectedAttendees: t.Attendees,
		Rice:              t.Rice,
		Vegetables:        t.Vegetables,
		Oil:               t.Oil,
		Dal:               t.Dal,
		Chapati:           t.Chapati,
	})
	if err := cw.Write(total); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func resultRow(label string, r model.PredictionResult) []string {
	return []string{
		label,
		strconv.Itoa(r.ExpectedAttendees),
		strconv.FormatFloat(r.Rice, 'f', 1, 64),
		strconv.FormatFloat(r.Vegetables, 'f', 1, 64),
		strconv.FormatFloat(r.Oil, 'f', 2, 64),
		strconv.FormatFloat(r.Dal, 'f', 1, 64),
		strconv.Itoa(r.Chapati),
	}
}

// WriteCards writes the result as labelled text cards. Rice and dal cards
// are omitted for breakfast.
func WriteCards(w io.Writer, o prediction.Outcome) error {
	in, r, h := o.Input, o.Result, o.Hints
	breakfast := in.MealType == model.MealBreakfast
	lines := []string{
		fmt.Sprintf("%s, %s (%s)", in.FestivalName, in.Date, in.MealType),
		fmt.Sprintf("Expected attendees: %d out of %d students", r.ExpectedAttendees, in.TotalStudents),
	}
	if !breakfast {
		lines = append(lines, fmt.Sprintf("  Rice          %8.1f kg      (%dg per person)", r.Rice, h.RiceGrams))
	}
	lines = append(lines, fmt.Sprintf("  Vegetables    %8.1f kg      (%dg per person)", r.Vegetables, h.VegetablesGrams))
	lines = append(lines, fmt.Sprintf("  Cooking oil   %8.2f L       (%dml per person)", r.Oil, h.OilMilliliters))
	if !breakfast {
		lines = append(lines, fmt.Sprintf("  Dal / lentils %8.1f kg      (%dg per person)", r.Dal, h.DalGrams))
	}
	lines = append(lines, fmt.Sprintf("  Chapati / roti %7d pieces  (%d per person)", r.Chapati, h.ChapatiPieces))
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// WritePlanCards writes the cards of every meal followed by the day totals.
func WritePlanCards(w io.Writer, plan prediction.DayPlan) error {
	for _, m := range plan.Meals {
		hints, _ := prediction.HintsFor(m.Input.MealType)
		if err := WriteCards(w, prediction.Outcome{Input: m.Input, Result: m.Result, Hints: hints}); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	t := plan.Totals
	_, err := fmt.Fprintf(w, "Day total: %d servings, rice %.1f kg, vegetables %.1f kg, oil %.2f L, dal %.1f kg, chapati %d\n",
		t.Attendees, t.Rice, t.Vegetables, t.Oil, t.Dal, t.Chapati)
	return err
}
