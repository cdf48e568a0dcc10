package prediction

import (
	"github.com/shopspring/decimal"

	"github.com/kilianp07/hostelmeal/core/model"
)

// MealPlan pairs a meal input with its predicted quantities.
type MealPlan struct {
	Input  model.PredictionInput  `json:"input"`
	Result model.PredictionResult `json:"result"`
}

// Totals sums each item across the meals of a day.
type Totals struct {
	Attendees  int     `json:"attendees"`
	Rice       float64 `json:"rice"`
	Vegetables float64 `json:"vegetables"`
	Oil        float64 `json:"oil"`
	Dal        float64 `json:"dal"`
	Chapati    int     `json:"chapati"`
}

// DayPlan is the set of meals predicted for one festival day.
type DayPlan struct {
	Meals  []MealPlan `json:"meals"`
	Totals Totals     `json:"totals"`
}

// PredictDay runs the engine for every meal and totals the quantities.
// Sums are exact so that 0.1 kg steps do not drift.
func PredictDay(e Engine, inputs []model.PredictionInput) DayPlan {
	plan := DayPlan{Meals: make([]MealPlan, 0, len(inputs))}
	var rice, veg, oil, dal decimal.Decimal
	for _, in := range inputs {
		res := e.Predict(in)
		plan.Meals = append(plan.Meals, MealPlan{Input: in, Result: res})
		plan.Totals.Attendees += res.ExpectedAttendees
		plan.Totals.Chapati += res.Chapati
		rice = rice.Add(decimal.NewFromFloat(res.Rice))
		veg = veg.Add(decimal.NewFromFloat(res.Vegetables))
		oil = oil.Add(decimal.NewFromFloat(res.Oil))
		dal = dal.Add(decimal.NewFromFloat(res.Dal))
	}
	plan.Totals.Rice = rice.InexactFloat64()
	plan.Totals.Vegetables = veg.InexactFloat64()
	plan.Totals.Oil = oil.InexactFloat64()
	plan.Totals.Dal = dal.InexactFloat64()
	return plan
}
