package prediction

import "github.com/shopspring/decimal"

const (
	kgPlaces    = 1
	literPlaces = 2
)

var hundred = decimal.NewFromInt(100)

// ceilTo rounds d up to the given number of decimal places.
func ceilTo(d decimal.Decimal, places int32) decimal.Decimal {
	return d.RoundCeil(places)
}

// attendees returns round(total * pct / 100) with halves rounded up.
func attendees(total int, pct float64) int {
	n := decimal.NewFromInt(int64(total)).
		Mul(decimal.NewFromFloat(pct)).
		Div(hundred).
		Round(0)
	return int(n.IntPart())
}
