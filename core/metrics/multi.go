package metrics

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPrediction forwards the event to all sinks, returning the first error
// encountered after every sink has been called.
func (m *MultiSink) RecordPrediction(ev PredictionEvent) error {
	var first error
	for _, s := range m.Sinks {
		if err := s.RecordPrediction(ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RecordValidationFailure forwards to sinks implementing ValidationRecorder.
func (m *MultiSink) RecordValidationFailure(ev ValidationFailureEvent) error {
	var first error
	for _, s := range m.Sinks {
		if rec, ok := s.(ValidationRecorder); ok {
			if err := rec.RecordValidationFailure(ev); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

// RecordRequestLatency forwards to sinks implementing LatencyRecorder.
func (m *MultiSink) RecordRequestLatency(l RequestLatency) error {
	var first error
	for _, s := range m.Sinks {
		if rec, ok := s.(LatencyRecorder); ok {
			if err := rec.RecordRequestLatency(l); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
