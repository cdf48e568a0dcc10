package model

// PredictionInput carries the form values for a single meal.
// FestivalName and Date are display-only; VegStudents and NonVegStudents are
// collected but do not change the quantities.
type PredictionInput struct {
	FestivalName         string   `json:"festivalName" yaml:"festivalName"`
	Date                 string   `json:"date" yaml:"date"`
	TotalStudents        int      `json:"totalStudents" yaml:"totalStudents"`
	VegStudents          int      `json:"vegStudents" yaml:"vegStudents"`
	NonVegStudents       int      `json:"nonVegStudents" yaml:"nonVegStudents"`
	MealType             MealType `json:"mealType" yaml:"mealType"`
	AttendancePercentage float64  `json:"attendancePercentage" yaml:"attendancePercentage"`
}

// PredictionResult holds the quantities to prepare for one meal.
type PredictionResult struct {
	ExpectedAttendees int     `json:"expectedAttendees"`
	Rice              float64 `json:"rice"`       // kg, 0.1 precision
	Vegetables        float64 `json:"vegetables"` // kg, 0.1 precision
	Oil               float64 `json:"oil"`        // liters, 0.01 precision
	Dal               float64 `json:"dal"`        // kg, 0.1 precision
	Chapati           int     `json:"chapati"`    // pieces
}
