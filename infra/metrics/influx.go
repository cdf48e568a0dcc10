package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/hostelmeal/core/metrics"
	"github.com/kilianp07/hostelmeal/infra/logger"
)

// InfluxSink writes prediction events to an InfluxDB bucket.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings InfluxDB and returns a NopSink when the
// instance is unhealthy, so predictions keep working without it.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPrediction writes one meal_prediction point.
func (s *InfluxSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	in, r := ev.Input, ev.Result
	p := write.NewPointWithMeasurement("meal_prediction").
		AddTag("meal_type", in.MealType.String()).
		AddTag("source", ev.Source).
		AddTag("festival", in.FestivalName).
		AddTag("prediction_id", ev.ID).
		AddField("total_students", in.TotalStudents).
		AddField("attendance_pct", in.AttendancePercentage).
		AddField("expected_attendees", r.ExpectedAttendees).
		AddField("rice_kg", r.Rice).
		AddField("vegetables_kg", r.Vegetables).
		AddField("oil_l", r.Oil).
		AddField("dal_kg", r.Dal).
		AddField("chapati", r.Chapati).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordValidationFailure writes one validation_failure point.
func (s *InfluxSink) RecordValidationFailure(ev coremetrics.ValidationFailureEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("validation_failure").
		AddTag("field", ev.Field).
		AddTag("source", ev.Source).
		AddField("count", 1).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }
