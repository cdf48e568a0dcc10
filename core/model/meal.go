package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MealType identifies the meal a prediction is made for.
// The zero value is not a valid meal.
type MealType int

const (
	MealUnknown MealType = iota
	MealBreakfast
	MealLunch
	MealDinner
)

// MealTypes lists the valid meal types in serving order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

// String returns the canonical name used in forms and JSON payloads.
func (m MealType) String() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the known meal types.
func (m MealType) Valid() bool {
	return m == MealBreakfast || m == MealLunch || m == MealDinner
}

// ParseMealType maps a meal name to its MealType, ignoring case and
// surrounding spaces.
func ParseMealType(s string) (MealType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "breakfast":
		return MealBreakfast, nil
	case "lunch":
		return MealLunch, nil
	case "dinner":
		return MealDinner, nil
	default:
		return MealUnknown, fmt.Errorf("unknown meal type %q", s)
	}
}

// MarshalText encodes the meal type by name.
func (m MealType) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid meal type %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a meal name. Unknown names decode to MealUnknown
// so that validation can report the field instead of the decoder.
func (m *MealType) UnmarshalText(b []byte) error {
	mt, err := ParseMealType(string(b))
	if err != nil {
		*m = MealUnknown
		return nil
	}
	*m = mt
	return nil
}

// UnmarshalJSON accepts only meal names. Numbers and other JSON values
// decode to MealUnknown like unknown names do.
func (m *MealType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*m = MealUnknown
		return nil
	}
	return m.UnmarshalText([]byte(s))
}
