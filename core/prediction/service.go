package prediction

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/hostelmeal/core/logger"
	"github.com/kilianp07/hostelmeal/core/metrics"
	"github.com/kilianp07/hostelmeal/core/model"
)

// Outcome is a served prediction with its identifier and display hints.
type Outcome struct {
	ID     string                 `json:"id"`
	Input  model.PredictionInput  `json:"input"`
	Result model.PredictionResult `json:"result"`
	Hints  Hints                  `json:"hints"`
}

// Service guards the engine with validation and records every outcome on
// the metrics sink. Sink errors are logged and never fail a prediction.
type Service struct {
	engine Engine
	sink   metrics.MetricsSink
	log    logger.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires an engine to a sink and logger. A nil sink records nothing.
func NewService(engine Engine, sink metrics.MetricsSink, log logger.Logger) *Service {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Service{engine: engine, sink: sink, log: log, now: time.Now, newID: uuid.NewString}
}

// Predict validates the input and returns the predicted quantities.
// Validation failures are returned as *model.ValidationError.
func (s *Service) Predict(source string, in model.PredictionInput) (Outcome, error) {
	if err := in.Validate(); err != nil {
		s.recordFailure(source, err)
		return Outcome{}, err
	}
	out := s.predict(source, in)
	return out, nil
}

// PredictDay validates every meal first, then predicts them all.
func (s *Service) PredictDay(source string, inputs []model.PredictionInput) (DayPlan, error) {
	if len(inputs) == 0 {
		return DayPlan{}, fmt.Errorf("day plan has no meals: %w", model.ErrInvalidInput)
	}
	for i, in := range inputs {
		if err := in.Validate(); err != nil {
			s.recordFailure(source, err)
			return DayPlan{}, fmt.Errorf("meal %d (%s): %w", i+1, in.MealType, err)
		}
	}
	plan := PredictDay(s.engine, inputs)
	for _, m := range plan.Meals {
		s.record(source, s.newID(), m.Input, m.Result)
	}
	return plan, nil
}

// Reject records an input the caller refused before prediction, such as a
// request missing a required field, and returns err unchanged.
func (s *Service) Reject(source string, err error) error {
	s.recordFailure(source, err)
	return err
}

func (s *Service) predict(source string, in model.PredictionInput) Outcome {
	res := s.engine.Predict(in)
	hints, _ := HintsFor(in.MealType)
	out := Outcome{ID: s.newID(), Input: in, Result: res, Hints: hints}
	s.record(source, out.ID, in, res)
	return out
}

func (s *Service) record(source, id string, in model.PredictionInput, res model.PredictionResult) {
	s.log.Infow("prediction served", map[string]any{
		"id":        id,
		"source":    source,
		"festival":  in.FestivalName,
		"meal_type": in.MealType.String(),
		"attendees": res.ExpectedAttendees,
	})
	ev := metrics.PredictionEvent{ID: id, Source: source, Input: in, Result: res, Time: s.now()}
	if err := s.sink.RecordPrediction(ev); err != nil {
		s.log.Warnf("record prediction %s: %v", id, err)
	}
}

func (s *Service) recordFailure(source string, err error) {
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	s.log.Debugw("input rejected", map[string]any{"source": source, "field": verr.Field, "reason": verr.Reason})
	rec, ok := s.sink.(metrics.ValidationRecorder)
	if !ok {
		return
	}
	ev := metrics.ValidationFailureEvent{Field: verr.Field, Source: source, Time: s.now()}
	if err := rec.RecordValidationFailure(ev); err != nil {
		s.log.Warnf("record validation failure: %v", err)
	}
}
