package predictions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kilianp07/hostelmeal/core/model"
	"github.com/kilianp07/hostelmeal/core/prediction"
	"github.com/kilianp07/hostelmeal/infra/logger"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// predictionRequest is the JSON body of a prediction. Numbers and the meal
// type are pointers so that a missing field is told apart from zero.
type predictionRequest struct {
	FestivalName         string          `json:"festivalName"`
	Date                 string          `json:"date"`
	TotalStudents        *int            `json:"totalStudents"`
	VegStudents          *int            `json:"vegStudents"`
	NonVegStudents       *int            `json:"nonVegStudents"`
	MealType             *model.MealType `json:"mealType"`
	AttendancePercentage *float64        `json:"attendancePercentage"`
}

// input converts the request, reporting the first missing field.
func (r predictionRequest) input() (model.PredictionInput, error) {
	required := []struct {
		field   string
		present bool
	}{
		{"totalStudents", r.TotalStudents != nil},
		{"vegStudents", r.VegStudents != nil},
		{"nonVegStudents", r.NonVegStudents != nil},
		{"mealType", r.MealType != nil},
		{"attendancePercentage", r.AttendancePercentage != nil},
	}
	for _, f := range required {
		if !f.present {
			return model.PredictionInput{}, &model.ValidationError{Field: f.field, Reason: "is required"}
		}
	}
	return model.PredictionInput{
		FestivalName:         r.FestivalName,
		Date:                 r.Date,
		TotalStudents:        *r.TotalStudents,
		VegStudents:          *r.VegStudents,
		NonVegStudents:       *r.NonVegStudents,
		MealType:             *r.MealType,
		AttendancePercentage: *r.AttendancePercentage,
	}, nil
}

type mealTypeResponse struct {
	Name  string           `json:"name"`
	Hints prediction.Hints `json:"hints"`
}

// NewPredictHandler serves POST /api/predictions. The body is a JSON
// prediction input with every field present; the response carries the
// quantities and per-person hints.
func NewPredictHandler(svc *prediction.Service, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req predictionRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			log.Debugf("decode prediction input: %v", err)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
		in, err := req.input()
		if err != nil {
			writeValidationError(w, svc.Reject("api", err))
			return
		}
		out, err := svc.Predict("api", in)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	})
}

// NewMealTypesHandler serves GET /api/meal-types with the per-person rates
// of every meal.
func NewMealTypesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out := make([]mealTypeResponse, 0, len(model.MealTypes))
		for _, m := range model.MealTypes {
			h, _ := prediction.HintsFor(m)
			out = append(out, mealTypeResponse{Name: m.String(), Hints: h})
		}
		writeJSON(w, http.StatusOK, out)
	})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Field: verr.Field})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
