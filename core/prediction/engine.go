package prediction

import (
	"github.com/shopspring/decimal"

	"github.com/kilianp07/hostelmeal/core/model"
)

// Engine predicts meal quantities. Implementations must be pure: the same
// input always yields the same result.
type Engine interface {
	Predict(in model.PredictionInput) model.PredictionResult
}

// StandardEngine applies the fixed per-person coefficient table.
// It assumes validated input; an unknown meal type yields only the
// expected attendee count.
type StandardEngine struct{}

// NewStandardEngine returns the coefficient-table engine.
func NewStandardEngine() StandardEngine { return StandardEngine{} }

// Predict computes the expected attendees and the quantities to prepare,
// each rounded up to its precision grid.
func (StandardEngine) Predict(in model.PredictionInput) model.PredictionResult {
	n := attendees(in.TotalStudents, in.AttendancePercentage)
	res := model.PredictionResult{ExpectedAttendees: n}
	c, ok := CoefficientsFor(in.MealType)
	if !ok {
		return res
	}
	people := decimal.NewFromInt(int64(n))
	res.Rice = ceilTo(people.Mul(c.Rice), kgPlaces).InexactFloat64()
	res.Vegetables = ceilTo(people.Mul(c.Vegetables), kgPlaces).InexactFloat64()
	res.Oil = ceilTo(people.Mul(c.Oil), literPlaces).InexactFloat64()
	res.Dal = ceilTo(people.Mul(c.Dal), kgPlaces).InexactFloat64()
	res.Chapati = int(ceilTo(people.Mul(c.Chapati), 0).IntPart())
	return res
}
