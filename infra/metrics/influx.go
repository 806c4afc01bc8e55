package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/voltpath/rangekit/core/model"
	"github.com/voltpath/rangekit/infra/logger"
)

// InfluxSink writes analysis events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
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

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) Sink {
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
		return NopSink{}
	}
	return sink
}

// RecordTripAnalysis writes the analysis as a point.
func (s *InfluxSink) RecordTripAnalysis(a model.TripRangeAnalysis) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("trip_analysis").
		AddTag("risk_tier", a.RiskTier.String()).
		AddTag("can_complete", strconv.FormatBool(a.CanCompleteTrip)).
		AddField("confidence_score", a.ConfidenceScore).
		AddField("route_distance_miles", round3(a.RouteDistanceMiles)).
		AddField("available_range_miles", round3(a.AvailableRangeMiles)).
		AddField("buffer_distance_miles", round3(a.BufferDistanceMiles)).
		SetTime(time.Now().UTC())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordAlerts writes one point per alert.
func (s *InfluxSink) RecordAlerts(alerts []model.VehicleServiceAlert) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, a := range alerts {
		p := write.NewPointWithMeasurement("service_alert").
			AddTag("type", a.Type.String()).
			AddTag("severity", a.Severity.String()).
			AddField("alert_id", a.ID).
			SetTime(a.Timestamp)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordSnapshot writes the vehicle state fields as a point.
func (s *InfluxSink) RecordSnapshot(snap model.VehicleHealthSnapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("health_snapshot").
		AddTag("vehicle_id", snap.VehicleID).
		AddTag("trigger", snap.Trigger.String()).
		AddField("battery_percent", round3(snap.BatteryPercent)).
		AddField("range_miles", round3(snap.RangeMiles)).
		AddField("capacity_kwh", round3(snap.CapacityKWh)).
		AddField("odometer_miles", round3(snap.OdometerMiles)).
		AddField("tire_fl", round3(snap.Tires.FrontLeft)).
		AddField("tire_fr", round3(snap.Tires.FrontRight)).
		AddField("tire_rl", round3(snap.Tires.RearLeft)).
		AddField("tire_rr", round3(snap.Tires.RearRight)).
		SetTime(snap.Timestamp)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts down the client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
