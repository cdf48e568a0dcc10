package prediction

import "github.com/kilianp07/hostelmeal/core/model"

// MockEngine returns a fixed result and remembers the inputs it was given.
type MockEngine struct {
	Result model.PredictionResult
	Calls  []model.PredictionInput
}

// Predict records the input and returns the configured result.
func (m *MockEngine) Predict(in model.PredictionInput) model.PredictionResult {
	m.Calls = append(m.Calls, in)
	return m.Result
}
