package metrics

import (
	"time"

	"github.com/kilianp07/hostelmeal/core/model"
)

// PredictionEvent describes one served prediction.
type PredictionEvent struct {
	ID     string
	Source string // "api" or "cli"
	Input  model.PredictionInput
	Result model.PredictionResult
	Time   time.Time
}

// MetricsSink records predictions for observability purposes.
type MetricsSink interface {
	RecordPrediction(ev PredictionEvent) error
}

// ValidationFailureEvent records an input rejected before prediction.
type ValidationFailureEvent struct {
	Field  string
	Source string
	Time   time.Time
}

// ValidationRecorder records rejected inputs.
type ValidationRecorder interface {
	RecordValidationFailure(ev ValidationFailureEvent) error
}

// RequestLatency is the time taken to serve one HTTP request.
type RequestLatency struct {
	Route    string
	Status   int
	Duration time.Duration
}

// LatencyRecorder is implemented by sinks able to record request latency.
type LatencyRecorder interface {
	RecordRequestLatency(l RequestLatency) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordPrediction(PredictionEvent) error               { return nil }
func (NopSink) RecordValidationFailure(ValidationFailureEvent) error { return nil }
func (NopSink) RecordRequestLatency(RequestLatency) error            { return nil }
