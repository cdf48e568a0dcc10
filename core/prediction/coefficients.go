package prediction

import (
	"github.com/shopspring/decimal"

	"github.com/kilianp07/hostelmeal/core/model"
)

// Coefficients are the per-person consumption rates for one meal.
type Coefficients struct {
	Rice       decimal.Decimal // kg
	Vegetables decimal.Decimal // kg
	Oil        decimal.Decimal // liters
	Dal        decimal.Decimal // kg
	Chapati    decimal.Decimal // pieces
}

var (
	breakfast = Coefficients{
		Rice:       decimal.Zero,
		Vegetables: decimal.RequireFromString("0.2"),
		Oil:        decimal.RequireFromString("0.015"),
		Dal:        decimal.Zero,
		Chapati:    decimal.NewFromInt(2),
	}
	mainMeal = Coefficients{
		Rice:       decimal.RequireFromString("0.15"),
		Vegetables: decimal.RequireFromString("0.2"),
		Oil:        decimal.RequireFromString("0.015"),
		Dal:        decimal.RequireFromString("0.1"),
		Chapati:    decimal.NewFromInt(3),
	}
)

// CoefficientsFor returns the per-person rates for the meal type.
// Lunch and dinner share the same rates.
func CoefficientsFor(m model.MealType) (Coefficients, bool) {
	switch m {
	case model.MealBreakfast:
		return breakfast, true
	case model.MealLunch, model.MealDinner:
		return mainMeal, true
	default:
		return Coefficients{}, false
	}
}

// Hints describes the per-person rates in grams, milliliters and pieces,
// as shown next to each quantity.
type Hints struct {
	RiceGrams       int64 `json:"riceGrams"`
	VegetablesGrams int64 `json:"vegetablesGrams"`
	OilMilliliters  int64 `json:"oilMilliliters"`
	DalGrams        int64 `json:"dalGrams"`
	ChapatiPieces   int64 `json:"chapatiPieces"`
}

var thousand = decimal.NewFromInt(1000)

// HintsFor returns the display hints for the meal type.
func HintsFor(m model.MealType) (Hints, bool) {
	c, ok := CoefficientsFor(m)
	if !ok {
		return Hints{}, false
	}
	return Hints{
		RiceGrams:       c.Rice.Mul(thousand).IntPart(),
		VegetablesGrams: c.Vegetables.Mul(thousand).IntPart(),
		OilMilliliters:  c.Oil.Mul(thousand).IntPart(),
		DalGrams:        c.Dal.Mul(thousand).IntPart(),
		ChapatiPieces:   c.Chapati.IntPart(),
	}, true
}
