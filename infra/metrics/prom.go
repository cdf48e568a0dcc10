package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/hostelmeal/core/metrics"
)

// PromSink records predictions in Prometheus metrics.
type PromSink struct {
	predictions *prometheus.CounterVec
	attendees   *prometheus.HistogramVec
	quantity    *prometheus.GaugeVec
	failures    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// NewPromSink registers prediction metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// that are already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meal_predictions_total",
			Help: "Total number of meal quantity predictions served",
		}, []string{"meal_type", "source"}),
		attendees: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meal_expected_attendees",
			Help:    "Expected attendees per predicted meal",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		}, []string{"meal_type"}),
		quantity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "meal_predicted_quantity",
			Help: "Quantity of the last prediction per item (kg, liters or pieces)",
		}, []string{"meal_type", "item"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meal_validation_failures_total",
			Help: "Inputs rejected before prediction, by field",
		}, []string{"field", "source"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meal_http_request_duration_seconds",
			Help:    "Time to serve prediction API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
	var err error
	if s.predictions, err = register(reg, s.predictions); err != nil {
		return nil, err
	}
	if s.attendees, err = register(reg, s.attendees); err != nil {
		return nil, err
	}
	if s.quantity, err = register(reg, s.quantity); err != nil {
		return nil, err
	}
	if s.failures, err = register(reg, s.failures); err != nil {
		return nil, err
	}
	if s.latency, err = register(reg, s.latency); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordPrediction counts the prediction and updates the per-item gauges.
func (s *PromSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	meal := ev.Input.MealType.String()
	r := ev.Result
	s.predictions.WithLabelValues(meal, ev.Source).Inc()
	s.attendees.WithLabelValues(meal).Observe(float64(r.ExpectedAttendees))
	s.quantity.WithLabelValues(meal, "rice").Set(r.Rice)
	s.quantity.WithLabelValues(meal, "vegetables").Set(r.Vegetables)
	s.quantity.WithLabelValues(meal, "oil").Set(r.Oil)
	s.quantity.WithLabelValues(meal, "dal").Set(r.Dal)
	s.quantity.WithLabelValues(meal, "chapati").Set(float64(r.Chapati))
	return nil
}

// RecordValidationFailure counts a rejected input field.
func (s *PromSink) RecordValidationFailure(ev coremetrics.ValidationFailureEvent) error {
	s.failures.WithLabelValues(ev.Field, ev.Source).Inc()
	return nil
}

// RecordRequestLatency observes the request duration.
func (s *PromSink) RecordRequestLatency(l coremetrics.RequestLatency) error {
	s.latency.WithLabelValues(l.Route, strconv.Itoa(l.Status)).Observe(l.Duration.Seconds())
	return nil
}
