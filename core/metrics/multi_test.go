package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordSink struct {
	predictions int
	failures    int
	err         error
}

func (r *recordSink) RecordPrediction(PredictionEvent) error {
	r.predictions++
	return r.err
}

func (r *recordSink) RecordValidationFailure(ValidationFailureEvent) error {
	r.failures++
	return nil
}

// predictionOnly implements only the mandatory interface.
type predictionOnly struct{ count int }

func (p *predictionOnly) RecordPrediction(PredictionEvent) error {
	p.count++
	return nil
}

func TestMultiSink_Forwards(t *testing.T) {
	s1 := &recordSink{}
	s2 := &predictionOnly{}
	m := NewMultiSink(s1, s2)
	assert.NoError(t, m.RecordPrediction(PredictionEvent{}))
	assert.NoError(t, m.RecordValidationFailure(ValidationFailureEvent{Field: "date"}))
	assert.NoError(t, m.RecordRequestLatency(RequestLatency{}))
	assert.Equal(t, 1, s1.predictions)
	assert.Equal(t, 1, s1.failures)
	assert.Equal(t, 1, s2.count)
}

func TestMultiSink_ErrorDoesNotStopFanout(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &predictionOnly{}
	err := NewMultiSink(s1, s2).RecordPrediction(PredictionEvent{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s2.count)
}

func TestConfig_Defaults(t *testing.T) {
	var c Config
	c.SetDefaults()
	assert.Equal(t, ":9102", c.PrometheusAddress)
	assert.False(t, c.PrometheusEnabled())
}
